package routes

import (
	"comanda/db"
	"comanda/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRequest struct {
	Username    string   `json:"username" validate:"required"`
	Password    string   `json:"password" validate:"required,min=6"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	IsSuperuser bool     `json:"is_superuser"`
	Roles       []string `json:"roles" validate:"omitempty,dive,oneof=Administrador Vendedor Repartidor Cliente"`
}

// createUser - POST /api/usuarios/
func createUser(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return validationFailed(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Username:    req.Username,
		Password:    string(hash),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsSuperuser: req.IsSuperuser,
		Roles:       req.Roles,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already in use",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// getAllUsers - GET /api/usuarios/
func getAllUsers(c *fiber.Ctx) error {
	var users []models.User

	dbQuery := db.DB.Model(&models.User{})
	if username := c.Query("username"); username != "" {
		dbQuery = dbQuery.Where("username = ?", username)
	}
	dbQuery = paginate(c, dbQuery)

	if err := dbQuery.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get users",
		})
	}

	return c.JSON(users)
}

// getUser - GET /api/usuarios/:id
func getUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User

	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user)
}

// updateUser - PUT/PATCH /api/usuarios/:id
func updateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.User
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if len(req.Roles) > 0 {
		if err := validate.Var(req.Roles, "dive,oneof=Administrador Vendedor Repartidor Cliente"); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": fiber.Map{"roles": "failed 'oneof' validation"},
			})
		}
	}

	update := models.User{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsSuperuser: req.IsSuperuser,
		Roles:       req.Roles,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}
		update.Password = string(hash)
	}

	if err := db.DB.Model(&existing).Updates(update).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already in use",
		})
	}

	return c.JSON(existing)
}

// deleteUser - DELETE /api/usuarios/:id
// Takes the user's profile, route registrations and owned orders along.
func deleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("customer_id = ?", user.ID).Find(&orders).Error; err != nil {
			return err
		}
		for _, order := range orders {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.Invoice{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.Delivery{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("customer_id = ?", user.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).Where("vendor_id = ?", user.ID).
			Update("vendor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).Where("courier_id = ?", user.ID).
			Update("courier_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Delivery{}).Where("courier_id = ?", user.ID).
			Update("courier_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", user.ID).Delete(&models.CustomerRoute{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
