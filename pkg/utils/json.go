package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON indenta qualquer valor ou []byte já serializado
func PrettyJSON(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			logrus.WithError(err).Debug("PrettyJSON: conteúdo não é JSON")
			return string(raw)
		}
		in = decoded
	}

	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Debug("PrettyJSON: erro ao serializar")
		return ""
	}

	return string(out)
}
