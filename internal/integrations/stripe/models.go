package stripe

// Статусы платёжного интента, используемые движком бронирований.
// Полный жизненный цикл интента принадлежит шлюзу; для подтверждения
// бронирования важен только статус succeeded.
const (
	IntentStatusSucceeded = "succeeded"
)

// PaymentIntent платёжный интент на стороне шлюза
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"` // minor units
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// apiError модель ошибки Stripe API
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
