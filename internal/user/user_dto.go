package user

type PermissionInput struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type CreateUserRequest struct {
	Name        string            `json:"name" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	Password    string            `json:"password" binding:"required,min=8"`
	Role        string            `json:"role" binding:"required,oneof=ADMIN MANAGER EMPLOYEE"`
	BranchID    string            `json:"branch_id" binding:"required,uuid"`
	Permissions []PermissionInput `json:"permissions"`
}

type UpdateUserRequest struct {
	Name        string            `json:"name" binding:"required"`
	Role        string            `json:"role" binding:"required,oneof=ADMIN MANAGER EMPLOYEE"`
	BranchID    string            `json:"branch_id" binding:"required,uuid"`
	IsActive    *bool             `json:"is_active"`
	Password    string            `json:"password" binding:"omitempty,min=8"`
	Permissions []PermissionInput `json:"permissions"`
}

type UserResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	BranchID    string            `json:"branch_id"`
	IsActive    bool              `json:"is_active"`
	Permissions []PermissionInput `json:"permissions"`
}
