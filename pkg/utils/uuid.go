package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para registros internos (snapshots, seeds)
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// MustGenerateID é como GenerateID mas entra em pânico em caso de erro
func MustGenerateID() string {
	return gonanoid.MustGenerate(characters, 12)
}
