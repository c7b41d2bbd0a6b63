package employeeservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с EmployeeService (каталог сотрудников)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента EmployeeService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEmployee получает карточку сотрудника по идентификатору
func (c *Client) GetEmployee(ctx context.Context, userID string) (*Employee, error) {
	requestURL := fmt.Sprintf("%s/internal/employees/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid employee ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrEmployeeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var employee Employee
	if err := json.NewDecoder(resp.Body).Decode(&employee); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &employee, nil
}

// GetEmployeeWithGracefulDegradation получает карточку сотрудника с graceful degradation.
// При недоступности EmployeeService возвращает ErrServiceDegraded: доступность
// столов продолжает работать на нестрогих стратегиях сопоставления владельца,
// а админские операции обязаны отклоняться.
func (c *Client) GetEmployeeWithGracefulDegradation(ctx context.Context, userID string) (*Employee, error) {
	employee, err := c.GetEmployee(ctx, userID)
	if err != nil {
		// Бизнес-ошибка "не найден" пробрасывается как есть
		if err == ErrEmployeeNotFound {
			c.log.Info("No employee record found for user_id=%s", userID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation
		c.log.Error("EmployeeService unavailable, applying graceful degradation for user_id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%s, error=%v", ErrServiceDegraded, userID, err)
	}

	return employee, nil
}

// IsAdmin проверяет, является ли пользователь администратором.
// Недоступность каталога закрывается отказом: без подтверждения прав
// админские операции не выполняются.
func (c *Client) IsAdmin(ctx context.Context, userID string) (bool, error) {
	employee, err := c.GetEmployee(ctx, userID)
	if err != nil {
		if err == ErrEmployeeNotFound {
			return false, nil
		}
		return false, err
	}
	return employee.IsAdmin, nil
}
