package ingesting

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

// MaxFileSize é o limite de 50 MB aceito pelo console
const MaxFileSize int64 = 50 * 1024 * 1024

const (
	UnsupportedFileMessage = "Unsupported file. Please upload a .csv file under 50 MB."
	NoFileMessage          = "Please select a CSV file before uploading."
)

// RequiredHeaders são as colunas exigidas na primeira linha do CSV, na ordem de exibição
var RequiredHeaders = []string{
	"date",
	"vendor_id",
	"vendor_name",
	"amount",
	"currency",
	"payment_method",
	"bank_name",
	"gst_number",
	"pan_number",
	"payment_purpose",
	"receiving_bank",
	"receiving_account",
	"country",
}

// ParseHeaderLine normaliza a linha de cabeçalho: remove BOM e \r, separa por vírgula,
// apara espaços e converte para minúsculas
func ParseHeaderLine(line string) []string {
	line = strings.TrimPrefix(line, "\ufeff")
	line = strings.ReplaceAll(line, "\r", "")
	line = strings.TrimSuffix(line, "\n")

	headers := strings.Split(line, ",")
	for i, header := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(header))
	}
	return headers
}

// MissingHeaders lê apenas a primeira linha e retorna as colunas obrigatórias ausentes
func MissingHeaders(r io.Reader) ([]string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return missingFrom(ParseHeaderLine(line)), nil
}

func missingFrom(headers []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, header := range headers {
		present[header] = struct{}{}
	}

	missing := make([]string, 0)
	for _, required := range RequiredHeaders {
		if _, ok := present[required]; !ok {
			missing = append(missing, required)
		}
	}
	return missing
}

// MissingColumnMessages gera uma mensagem por coluna ausente
func MissingColumnMessages(missing []string) []string {
	messages := make([]string, len(missing))
	for i, header := range missing {
		messages[i] = fmt.Sprintf("Missing required column: %s", header)
	}
	return messages
}

// CheckFile aplica as restrições de extensão .csv e tamanho máximo
func CheckFile(name string, size int64) error {
	if !strings.EqualFold(filepath.Ext(name), ".csv") || size > MaxFileSize {
		return NewIngestError(
			ErrUnsupportedFile,
			apiErrors.ErrUnsupportedFile,
			[]string{UnsupportedFileMessage},
			fmt.Sprintf("%s (%s)", name, humanize.IBytes(uint64(max(size, 0)))),
		)
	}
	return nil
}
