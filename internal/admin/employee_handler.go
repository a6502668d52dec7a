package admin

import (
	"errors"
	"html/template"
	"log"
	"strings"
	"time"

	"lalogistics-backend/internal/database"
	"lalogistics-backend/internal/mailer"
	"lalogistics-backend/internal/models"
	"lalogistics-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
)

type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employee_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Picture    string `json:"picture"`
}

type EmployeeResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmployeeID string `json:"employee_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Picture    string `json:"picture"`
	LastActive string `json:"last_active"`
	CreatedAt  string `json:"created_at"`
}

// GET /api/admin/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.User
		if err := database.DB.
			Where("role = ?", models.RoleEmployee).
			Order("created_at DESC").
			Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load employees")
		}

		out := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			out = append(out, employeeResponse(e))
		}
		return c.JSON(out)
	}
}

func employeeResponse(e models.User) EmployeeResponse {
	lastActive := ""
	if e.LastActive != nil {
		lastActive = e.LastActive.Format("2006-01-02 15:04:05")
	}
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		EmployeeID: e.EmployeeID,
		Address:    e.Address,
		Phone:      e.Phone,
		Picture:    e.Picture,
		LastActive: lastActive,
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// PUT /api/admin/employees/:id
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Name == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and email are required")
		}

		var employee models.User
		if err := database.DB.Where("id = ? AND role = ?", id, models.RoleEmployee).First(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		// uniqueness of email / employee_id against everyone else
		var count int64
		database.DB.Model(&models.User{}).
			Where("id != ? AND (email = ? OR (employee_id != '' AND employee_id = ?))", employee.ID, body.Email, body.EmployeeID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Email or Employee ID already exists")
		}

		updates := map[string]interface{}{
			"name":        body.Name,
			"email":       body.Email,
			"employee_id": body.EmployeeID,
			"address":     body.Address,
			"phone":       body.Phone,
			"picture":     body.Picture,
			"updated_at":  time.Now(),
		}
		if err := database.DB.Model(&employee).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update employee")
		}

		return c.JSON(fiber.Map{"message": "Employee updated successfully"})
	}
}

var employeeReportTmpl = template.Must(template.New("employees").Parse(`<h1>{{.CompanyName}}</h1>
<h2>Employee Report</h2>

<table border="1" style="border-collapse: collapse; width: 100%;">
	<thead>
		<tr style="background-color: #f0f0f0;">
			<th>Employee ID</th>
			<th>Name</th>
			<th>Email</th>
			<th>Phone</th>
			<th>Address</th>
			<th>Last Active</th>
			<th>Joined Date</th>
		</tr>
	</thead>
	<tbody>
{{- range .Employees}}
		<tr>
			<td>{{.EmployeeID}}</td>
			<td>{{.Name}}</td>
			<td>{{.Email}}</td>
			<td>{{.Phone}}</td>
			<td>{{.Address}}</td>
			<td>{{.LastActive}}</td>
			<td>{{.Joined}}</td>
		</tr>
{{- end}}
	</tbody>
</table>
<p>Total Employees: {{len .Employees}}</p>
`))

type employeeReportRow struct {
	EmployeeID string
	Name       string
	Email      string
	Phone      string
	Address    string
	LastActive string
	Joined     string
}

type SendEmployeeReportRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}

// POST /api/email/send-employee-report
func SendEmployeeReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SendEmployeeReportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.To == "" || body.Subject == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Recipient and subject are required")
		}

		snap, err := settings.LoadSnapshot()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		var employees []models.User
		if err := database.DB.
			Where("role = ?", models.RoleEmployee).
			Order("name").
			Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load employees")
		}

		emptyToNA := func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		}

		rows := make([]employeeReportRow, 0, len(employees))
		for _, e := range employees {
			lastActive := "Never"
			if e.LastActive != nil {
				lastActive = e.LastActive.Format("2006-01-02")
			}
			rows = append(rows, employeeReportRow{
				EmployeeID: emptyToNA(e.EmployeeID),
				Name:       e.Name,
				Email:      e.Email,
				Phone:      emptyToNA(e.Phone),
				Address:    emptyToNA(e.Address),
				LastActive: lastActive,
				Joined:     e.CreatedAt.Format("2006-01-02"),
			})
		}

		var sb strings.Builder
		if err := employeeReportTmpl.Execute(&sb, fiber.Map{
			"CompanyName": snap.CompanyName,
			"Employees":   rows,
		}); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render report")
		}

		if err := mailer.Send(snap, body.To, body.Subject, sb.String()); err != nil {
			if errors.Is(err, mailer.ErrNotConfigured) {
				return fiber.NewError(fiber.StatusBadRequest, "Email is not configured")
			}
			log.Println("Employee report email failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to send email")
		}

		return c.JSON(fiber.Map{"message": "Employee report sent successfully"})
	}
}
