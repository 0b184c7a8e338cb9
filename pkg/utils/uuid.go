package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idempotencyKeyLength = 21

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateIdempotencyKey gera a chave estável usada para deduplicar eventos de painel
func GenerateIdempotencyKey() (string, error) {
	return gonanoid.Generate(characters, idempotencyKeyLength)
}
