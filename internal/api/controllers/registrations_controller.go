package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yellbook/internal/models/request_models"
	"yellbook/internal/services"
	"yellbook/pkg/utils"
)

type RegistrationsController struct {
	registrationService services.RegistrationServiceInterface
}

func NewRegistrationsController(registrationService services.RegistrationServiceInterface) *RegistrationsController {
	return &RegistrationsController{registrationService: registrationService}
}

func (rc *RegistrationsController) CreateRegistration(c *gin.Context) {
	var req request_models.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Бүртгэлийн мэдээлэл дутуу байна")
		return
	}

	record, err := rc.registrationService.CreateRegistration(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        record.ID,
		"createdAt": record.CreatedAt,
	})
}

func (rc *RegistrationsController) ListRegistrations(c *gin.Context) {
	records, err := rc.registrationService.ListRegistrations()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Registrations fetched successfully")
}

func (rc *RegistrationsController) CreateAdminSession(c *gin.Context) {
	var req request_models.AdminSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := rc.registrationService.CreateAdminSession(req)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Нэвтрэх нэр эсвэл нууц үг буруу.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     session.Token,
		"createdAt": session.CreatedAt,
		"message":   "Амжилттай нэвтэрлээ. Та одоо админ самбарт нэвтэрч болно.",
	})
}
