package sellercloudclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxAttempts limita o retry de falhas de conexão: 3 tentativas no total.
const maxAttempts = 3

type tokenRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Execute realiza uma chamada nomeada da tabela de endpoints. A primeira
// chamada autenticada dispara a troca de credenciais por token; o token fica
// em cache pela vida do cliente e nunca é anexado à própria chamada de token.
//
// Em caso de falha definitiva o erro é classificado, um alerta é disparado e
// a resposta volta nula; o chamador trata a ausência como sinal de falha.
func (c *SellerCloudClient) Execute(action string, payload interface{}, urlArgs map[string]string) (*Response, error) {
	endpoint, ok := c.endpoints[action]
	if !ok {
		return nil, fmt.Errorf("ação de API inválida: %q", action)
	}

	if action != ActionGetToken {
		if err := c.ensureToken(); err != nil {
			return nil, err
		}
	}

	return c.perform(action, endpoint, payload, urlArgs)
}

func (c *SellerCloudClient) perform(action string, endpoint Endpoint, payload interface{}, urlArgs map[string]string) (*Response, error) {
	requestURL, err := buildURL(endpoint.URLTemplate, urlArgs)
	if err != nil {
		return nil, err
	}

	var reqErr *RequestError

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		response, err := c.doRequest(action, endpoint.Method, requestURL, payload)
		if err == nil {
			if response.StatusCode != http.StatusOK {
				logrus.WithFields(logrus.Fields{
					"action":      action,
					"status_code": response.StatusCode,
				}).Warn("Requisição ao SellerCloud respondeu com status de erro")
			} else {
				logrus.Info(endpoint.SuccessMessage)
			}
			return response, nil
		}

		reqErr = classifyRequestError(err, endpoint.ErrorContext)
		if reqErr.Kind != ErrorKindConnection {
			break
		}

		if attempt < maxAttempts {
			logrus.WithFields(logrus.Fields{
				"action":  action,
				"attempt": attempt,
			}).Warn("Falha de conexão com o SellerCloud, tentando novamente")
		}
	}

	logrus.WithFields(logrus.Fields{
		"action": action,
		"kind":   reqErr.Kind,
	}).Error(reqErr.Error())

	if alertErr := c.notifier.Alert(
		"There was an error executing a request on SellerCloud API",
		reqErr.Error(),
	); alertErr != nil {
		logrus.WithError(alertErr).Warn("Erro ao enviar alerta de falha de requisição")
	}

	return nil, reqErr
}

func (c *SellerCloudClient) doRequest(action string, method Method, requestURL string, payload interface{}) (*Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(httpMethod(method), requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if action != ActionGetToken && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

func (c *SellerCloudClient) ensureToken() error {
	if c.token != "" {
		return nil
	}

	payload := tokenRequest{
		Username: c.cfg.Username,
		Password: c.cfg.Password,
	}

	response, err := c.perform(ActionGetToken, c.endpoints[ActionGetToken], payload, nil)
	if err != nil {
		return err
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("erro ao obter token do SellerCloud: status %d", response.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(response.Body, &token); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do token: %w", err)
	}

	if token.AccessToken == "" {
		return fmt.Errorf("token retornado pela API do SellerCloud é vazio")
	}

	c.token = token.AccessToken
	return nil
}

// buildURL substitui os placeholders {nome} do template pelos argumentos,
// percent-encodados para que valores com `&`, `/` ou espaços não quebrem a
// query string.
func buildURL(template string, urlArgs map[string]string) (string, error) {
	formatted := template
	for name, value := range urlArgs {
		formatted = strings.ReplaceAll(formatted, "{"+name+"}", url.QueryEscape(value))
	}

	if strings.Contains(formatted, "{") && strings.Contains(formatted, "}") {
		return "", fmt.Errorf("template de URL com placeholder sem valor: %s", formatted)
	}

	return formatted, nil
}

func httpMethod(method Method) string {
	switch method {
	case MethodPost:
		return http.MethodPost
	case MethodDelete:
		return http.MethodDelete
	}
	return http.MethodGet
}
