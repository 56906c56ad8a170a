package service

import "github.com/go-playground/validator/v10"

// Validator instance untuk DTO auth
var validate = validator.New()
