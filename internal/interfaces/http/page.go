package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
)

// parsePage lee limit/offset del query string con los defaults de la API.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	p := dto.PageRequest{Limit: limit, Offset: offset}
	p.DefaultPage()
	return p
}
