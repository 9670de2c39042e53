package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength    = 8
	recordIDLength = 14
	recordIDPrefix = "rec"
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}

// GenerateRecordID gera ids no mesmo formato dos registros do Airtable
func GenerateRecordID() (string, error) {
	id, err := gonanoid.Generate(characters, recordIDLength)
	if err != nil {
		return "", err
	}
	return recordIDPrefix + id, nil
}
