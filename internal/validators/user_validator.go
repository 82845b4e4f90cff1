package validators

type UserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

func ValidateUserRole(req *UserRoleRequest) ValidationErrors {
	return ValidateStruct(req)
}
