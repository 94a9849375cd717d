package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	exportIDSize  = 10
	exportIDLabel = "exp_"
)

// GenerateExportID gera o identificador curto enviado em cada digest
func GenerateExportID() (string, error) {
	id, err := gonanoid.Generate(characters, exportIDSize)
	if err != nil {
		return "", err
	}

	return exportIDLabel + id, nil
}
