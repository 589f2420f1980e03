package sellercloudclient

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// ErrorKind classifica a falha de uma requisição. Apenas falhas de conexão
// são retentadas; as demais encerram a tentativa imediatamente.
type ErrorKind string

const (
	ErrorKindConnection ErrorKind = "connection"
	ErrorKindHTTP       ErrorKind = "http"
	ErrorKindTimeout    ErrorKind = "timeout"
	ErrorKindOther      ErrorKind = "other"
)

// RequestError é o erro final de uma chamada à API, com a classificação que
// dirigiu o laço de retry e o contexto do endpoint.
type RequestError struct {
	Kind    ErrorKind
	Context string
	Err     error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case ErrorKindConnection:
		return fmt.Sprintf("Connection error occurred %s%v", e.Context, e.Err)
	case ErrorKindHTTP:
		return fmt.Sprintf("HTTP error occurred %s%v", e.Context, e.Err)
	case ErrorKindTimeout:
		return fmt.Sprintf("Timeout occurred %s%v", e.Context, e.Err)
	}
	return fmt.Sprintf("Other error occurred %s%v", e.Context, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// FetchError indica que uma página da listagem de pedidos respondeu com
// status diferente de 200. A busca do canal é descartada por inteiro.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("erro ao buscar pedidos no SellerCloud: status %d recebido durante a paginação", e.StatusCode)
}

// classifyRequestError traduz o erro do transporte HTTP para o tipo de falha
// que decide o retry.
func classifyRequestError(err error, errorContext string) *RequestError {
	kind := ErrorKindOther

	var urlErr *url.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError

	switch {
	case errors.As(err, &urlErr) && urlErr.Timeout():
		kind = ErrorKindTimeout
	case errors.As(err, &dnsErr),
		errors.As(err, &opErr),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED):
		kind = ErrorKindConnection
	case strings.Contains(err.Error(), "malformed HTTP"):
		kind = ErrorKindHTTP
	}

	return &RequestError{
		Kind:    kind,
		Context: errorContext,
		Err:     err,
	}
}
