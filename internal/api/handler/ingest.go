package handler

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/vfg2006/magnus-console/internal/usecases/ingesting"
	"github.com/vfg2006/magnus-console/pkg/apiErrors"
	"github.com/vfg2006/magnus-console/pkg/log"
)

const (
	FileField = "file"
	// folga para os cabeçalhos do multipart além do limite do arquivo
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

// IngestCSV recebe o arquivo no campo multipart "file" e repassa à Magnus.
// Com ?progress=true a resposta vira NDJSON com cada mudança de status.
func IngestCSV(service ingesting.IngestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, ingesting.MaxFileSize+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedFile, ingesting.UnsupportedFileMessage, nil)
				return
			}
			if !errors.Is(err, http.ErrNotMultipart) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo multipart inválido", err.Error())
				return
			}
		}

		var upload ingesting.FileUpload
		if file, header, err := r.FormFile(FileField); err == nil {
			defer file.Close()
			upload = ingesting.FileUpload{Name: header.Filename, Size: header.Size, Body: file}
		}

		stream, _ := strconv.ParseBool(r.URL.Query().Get("progress"))
		if !stream {
			status, err := service.UploadCSV(r.Context(), upload, nil)
			if err != nil {
				writeUsecaseError(w, err)
				return
			}

			logger.WithFields(log.Fields{
				"session_id": status.Session.SessionID,
				"filename":   upload.Name,
			}).Info("ingest: CSV enviado")

			writeJSON(w, http.StatusCreated, status)
			return
		}

		streamUpload(w, r, service, upload)
	})
}

func streamUpload(w http.ResponseWriter, r *http.Request, service ingesting.IngestService, upload ingesting.FileUpload) {
	flusher, _ := w.(http.Flusher)
	encoder := json.NewEncoder(w)

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	// o callback pode vir da goroutine que envia o corpo; o encoder fica numa goroutine só
	var (
		mu       sync.Mutex
		finished bool
	)
	progress := make(chan ingesting.UploadStatus, 16)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for status := range progress {
			if err := encoder.Encode(status); err != nil {
				continue
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}()

	final, err := service.UploadCSV(r.Context(), upload, func(status ingesting.UploadStatus) {
		mu.Lock()
		defer mu.Unlock()
		if finished {
			return
		}
		select {
		case progress <- status:
		default:
		}
	})
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("ingest: upload com progresso não concluído")
	}

	mu.Lock()
	finished = true
	progress <- final
	close(progress)
	mu.Unlock()
	<-done
}

func IngestLiveAPI(service ingesting.IngestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request ingesting.BankSetupRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido", err.Error())
			return
		}

		status, err := service.ConnectBanks(r.Context(), request)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id": status.SessionID,
			"banks":      status.Selected,
		}).Info("ingest: bancos conectados")

		writeJSON(w, http.StatusCreated, status)
	})
}

func ListBanks(service ingesting.IngestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"banks":        service.Banks(),
			"max_selected": ingesting.MaxSelectedBanks,
		})
	})
}
