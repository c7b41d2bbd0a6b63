package employeeservice

// Employee модель сотрудника из EmployeeService
type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// ErrorResponse модель ошибки от EmployeeService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
