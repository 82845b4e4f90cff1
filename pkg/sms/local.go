package sms

import (
	"context"
	"fmt"
	"log"
	"time"
)

// LocalProvider logs messages instead of delivering them. It backs the
// "local" SMS provider setting used in development, where verification codes
// are read off the server log.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error) {
	log.Printf("[sms] to=%s: %s", request.To, request.Message)

	return &SMSResponse{
		MessageID: fmt.Sprintf("local-%d", time.Now().UnixNano()),
		Status:    "sent",
	}, nil
}
