package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/arefin/procurehub-backend/internal/app/service"
	"github.com/arefin/procurehub-backend/internal/errors"
	"github.com/arefin/procurehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	companyService service.CompanyService
}

func NewCompanyController(companyService service.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// GetCompanies lists registered companies
// GET /api/v1/companies
func (ctrl *CompanyController) GetCompanies(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	companies, err := ctrl.companyService.GetAllCompanies()
	if err != nil {
		log.Error("Failed to fetch companies", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

// GetCompany returns a single company
// GET /api/v1/companies/:id
func (ctrl *CompanyController) GetCompany(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid company ID")
		return
	}

	company, err := ctrl.companyService.GetCompanyByID(uint(id))
	if err != nil {
		if stderrors.Is(err, service.ErrCompanyNotFound) {
			errors.NotFound(c, errors.CompanyNotFound, "Company not found")
			return
		}
		log.Error("Failed to fetch company", err, map[string]interface{}{
			"company_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company": company,
	})
}

// GetCompanyEmployees lists a company's employees
// GET /api/v1/companies/:id/employees
func (ctrl *CompanyController) GetCompanyEmployees(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid company ID")
		return
	}

	employees, err := ctrl.companyService.GetCompanyEmployees(uint(id))
	if err != nil {
		if stderrors.Is(err, service.ErrCompanyNotFound) {
			errors.NotFound(c, errors.CompanyNotFound, "Company not found")
			return
		}
		log.Error("Failed to fetch company employees", err, map[string]interface{}{
			"company_id": id,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
		"count":     len(employees),
	})
}
