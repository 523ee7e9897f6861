package ingesting

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	magnusdomain "github.com/vfg2006/magnus-console/infrastructure/integrator/magnus/domain"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
)

const (
	CSVSuccessMessage  = "CSV ingestion complete. Redirecting you to the dashboard overview."
	CSVFailureFallback = "We could not process the CSV file. Please try again or contact support."
)

// Etapas fixas da barra de progresso
const (
	ProgressStarted   = 5
	ProgressValidated = 25
	ProgressUploaded  = 75
	ProgressDone      = 100
)

type UploadPhase string

const (
	UploadIdle       UploadPhase = "idle"
	UploadValidating UploadPhase = "validating"
	UploadUploading  UploadPhase = "uploading"
	UploadSuccess    UploadPhase = "success"
	UploadError      UploadPhase = "error"
)

type Ingestor interface {
	IngestCSV(ctx context.Context, filename string, file io.Reader) (*magnusdomain.IngestSession, error)
}

// FileUpload é o arquivo escolhido pelo usuário
type FileUpload struct {
	Name string
	Size int64
	Body io.Reader
}

type UploadStatus struct {
	Phase            UploadPhase                 `json:"phase"`
	Progress         int                         `json:"progress"`
	Filename         string                      `json:"filename,omitempty"`
	ValidationErrors []string                    `json:"validation_errors,omitempty"`
	Error            string                      `json:"error,omitempty"`
	Message          string                      `json:"message,omitempty"`
	Session          *magnusdomain.IngestSession `json:"session,omitempty"`
	Redirect         *Redirect                   `json:"redirect,omitempty"`
}

type ProgressFunc func(status UploadStatus)

// Uploader conduz o fluxo idle → validating → uploading → success|error de um CSV
type Uploader struct {
	ingestor   Ingestor
	redirector Redirector
	onProgress ProgressFunc

	mu     sync.Mutex
	status UploadStatus
	cancel context.CancelFunc
}

func NewUploader(ingestor Ingestor, redirector Redirector, onProgress ProgressFunc) *Uploader {
	return &Uploader{
		ingestor:   ingestor,
		redirector: redirector,
		onProgress: onProgress,
		status:     UploadStatus{Phase: UploadIdle},
	}
}

func (u *Uploader) Status() UploadStatus {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

// Upload valida o cabeçalho e envia o arquivo. Colunas ausentes bloqueiam o envio.
func (u *Uploader) Upload(ctx context.Context, file FileUpload) (UploadStatus, error) {
	u.mu.Lock()
	if u.status.Phase == UploadValidating || u.status.Phase == UploadUploading {
		u.mu.Unlock()
		return u.Status(), NewIngestError(ErrUploadInProgress, apiErrors.ErrInvalidRequest, nil, "")
	}

	ctx, cancel := context.WithCancel(ctx)
	u.cancel = cancel
	u.status = UploadStatus{Phase: UploadValidating, Filename: file.Name}
	u.mu.Unlock()
	defer cancel()

	if file.Body == nil || file.Name == "" {
		return u.reject(NewIngestError(ErrNoFile, apiErrors.ErrMissingRequiredData, []string{NoFileMessage}, ""))
	}

	if err := CheckFile(file.Name, file.Size); err != nil {
		var ingestErr *IngestError
		errors.As(err, &ingestErr)
		return u.reject(ingestErr)
	}

	u.update(func(s *UploadStatus) {
		*s = UploadStatus{Phase: UploadValidating, Progress: ProgressStarted, Filename: file.Name}
	})

	reader := bufio.NewReader(file.Body)
	headerLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return u.fail(file.Name, err)
	}

	if missing := missingFrom(ParseHeaderLine(headerLine)); len(missing) > 0 {
		logrus.WithFields(logrus.Fields{
			"filename": file.Name,
			"missing":  missing,
		}).Info("ingest: CSV sem colunas obrigatórias")

		return u.reject(&IngestError{
			Err:      ErrMissingColumns,
			Code:     apiErrors.ErrMissingColumns,
			Messages: MissingColumnMessages(missing),
			Details:  strings.Join(missing, ", "),
		})
	}

	u.update(func(s *UploadStatus) {
		s.Phase = UploadUploading
		s.Progress = ProgressValidated
	})

	body := io.MultiReader(strings.NewReader(headerLine), reader)
	if file.Size > 0 {
		body = &progressReader{reader: body, total: file.Size, report: u.reportUploaded}
	}

	session, err := u.ingestor.IngestCSV(ctx, file.Name, body)
	if err != nil {
		if ctx.Err() != nil {
			u.Reset()
			return u.Status(), NewIngestError(ErrUploadCancelled, apiErrors.ErrInvalidRequest, nil, file.Name)
		}
		return u.fail(file.Name, err)
	}

	u.update(func(s *UploadStatus) {
		s.Progress = ProgressUploaded
	})

	redirect := u.redirector.For(session.SessionID)
	u.update(func(s *UploadStatus) {
		s.Phase = UploadSuccess
		s.Progress = ProgressDone
		s.Session = session
		s.Redirect = redirect
		s.Message = CSVSuccessMessage
	})

	return u.Status(), nil
}

// Cancel interrompe o upload em andamento
func (u *Uploader) Cancel() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cancel != nil {
		u.cancel()
	}
}

// DismissError fecha o modal de erro e volta para idle
func (u *Uploader) DismissError() {
	u.mu.Lock()
	if u.status.Phase != UploadError {
		u.mu.Unlock()
		return
	}
	u.mu.Unlock()

	u.update(func(s *UploadStatus) {
		*s = UploadStatus{Phase: UploadIdle}
	})
}

// Reset cancela qualquer envio e limpa o estado
func (u *Uploader) Reset() {
	u.Cancel()
	u.update(func(s *UploadStatus) {
		*s = UploadStatus{Phase: UploadIdle}
	})
}

func (u *Uploader) reject(err *IngestError) (UploadStatus, error) {
	u.update(func(s *UploadStatus) {
		*s = UploadStatus{Phase: UploadIdle, ValidationErrors: err.Messages}
	})
	return u.Status(), err
}

func (u *Uploader) fail(filename string, err error) (UploadStatus, error) {
	message := CSVFailureFallback
	var respErr *magnusdomain.ResponseError
	if errors.As(err, &respErr) {
		message = respErr.Error()
	}

	u.update(func(s *UploadStatus) {
		s.Phase = UploadError
		s.Progress = 0
		s.Error = message
	})

	return u.Status(), &IngestError{
		Err:      ErrUploadFailed,
		Code:     apiErrors.ErrExternalService,
		Messages: []string{message},
		Details:  filename,
	}
}

// reportUploaded distribui os bytes enviados entre 25% e 75%
func (u *Uploader) reportUploaded(sent, total int64) {
	progress := ProgressValidated + int(int64(ProgressUploaded-ProgressValidated)*sent/total)
	if progress >= ProgressUploaded {
		progress = ProgressUploaded - 1
	}

	u.mu.Lock()
	changed := u.status.Phase == UploadUploading && progress > u.status.Progress
	u.mu.Unlock()

	if changed {
		u.update(func(s *UploadStatus) {
			s.Progress = progress
		})
	}
}

func (u *Uploader) update(fn func(s *UploadStatus)) {
	u.mu.Lock()
	fn(&u.status)
	snapshot := u.status
	u.mu.Unlock()

	if u.onProgress != nil {
		u.onProgress(snapshot)
	}
}

type progressReader struct {
	reader io.Reader
	total  int64
	sent   int64
	report func(sent, total int64)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		p.sent += int64(n)
		p.report(min(p.sent, p.total), p.total)
	}
	return n, err
}
