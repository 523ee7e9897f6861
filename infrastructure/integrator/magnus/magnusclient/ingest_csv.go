package magnusclient

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/pkg/errors"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
)

const uploadFallbackMessage = "Failed to upload CSV. Please retry later."

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadCSV envia o arquivo no campo multipart "file" para {base}/ingest/csv.
// O corpo é transmitido em streaming; cancelar o ctx interrompe o envio.
func (c *MagnusClient) UploadCSV(ctx context.Context, filename string, file io.Reader) (*magnusdomain.IngestSession, error) {
	bodyReader, bodyWriter := io.Pipe()
	form := multipart.NewWriter(bodyWriter)

	go func() {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
		// A API rejeita application/octet-stream com 415
		header.Set("Content-Type", "text/csv")

		part, err := form.CreatePart(header)
		if err != nil {
			bodyWriter.CloseWithError(err)
			return
		}

		if _, err := io.Copy(part, file); err != nil {
			bodyWriter.CloseWithError(err)
			return
		}

		bodyWriter.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("ingest", "csv"), bodyReader)
	if err != nil {
		bodyReader.Close()
		return nil, errors.Wrap(err, "erro ao criar a requisição de upload")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		bodyReader.Close()
		return nil, errors.Wrap(err, "erro ao enviar o CSV")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, readDetail(resp, uploadFallbackMessage)
	}

	var session magnusdomain.IngestSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do upload")
	}

	if session.SessionID == "" {
		return nil, &magnusdomain.ResponseError{StatusCode: resp.StatusCode, Message: uploadFallbackMessage}
	}

	return &session, nil
}
