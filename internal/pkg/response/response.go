package response

import "github.com/gofiber/fiber/v3"

// Envelope mirrors the shape clients already consume: every success is
// {success, data, message?}, every failure {success, error, statusCode}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorEnvelope struct {
	Success    bool                `json:"success"`
	Error      string              `json:"error"`
	Details    map[string][]string `json:"details,omitempty"`
	StatusCode int                 `json:"statusCode"`
}

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type PaginatedEnvelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func Success(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data})
}

func SuccessMessage(c fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data, Message: message})
}

func Paginated(c fiber.Ctx, data interface{}, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(PaginatedEnvelope{Success: true, Data: data, Pagination: p})
}

func Error(c fiber.Ctx, status int, message string, details map[string][]string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorEnvelope{Success: false, Error: message, Details: details, StatusCode: st})
}

// NewPagination derives the envelope fields from a total count.
func NewPagination(page, pageSize, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not found"
	case fiber.StatusConflict:
		return "conflict"
	case fiber.StatusUnprocessableEntity:
		return "unprocessable entity"
	default:
		if status >= 500 {
			return "internal server error"
		}
		return "error"
	}
}
