package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// paginate applies the limit/skip query parameters.
func paginate(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if skip := c.QueryInt("skip", 0); skip > 0 {
		q = q.Offset(skip)
	}
	if limit := c.QueryInt("limit", 0); limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

// dateEquals narrows a timestamp column to an exact calendar date
// (YYYY-MM-DD). Column names are compile-time constants at every call site.
func dateEquals(q *gorm.DB, column, value string) *gorm.DB {
	return q.Where("date("+column+") = ?", value)
}
