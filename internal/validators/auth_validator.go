package validators

type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type SignInRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

func ValidateSendCode(req *SendCodeRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVerifyCode(req *VerifyCodeRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateSignIn(req *SignInRequest) ValidationErrors {
	return ValidateStruct(req)
}
