package handlers

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Form validation. Each parse function extracts and coerces the posted
// fields and returns field-keyed error messages; a non-empty map means the
// submission is rejected before any backend call is made.

type fieldErrors map[string][]string

func (f fieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func checkEmail(errs fieldErrors, email string) {
	if email == "" {
		errs.add("email", "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs.add("email", "Invalid email address")
	}
}

func parseSignup(c *gin.Context) (domain.SignupInput, fieldErrors) {
	errs := fieldErrors{}
	in := domain.SignupInput{
		Email:    strings.TrimSpace(c.PostForm("email")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		Password: c.PostForm("password"),
		Role:     domain.Role(c.PostForm("role")),
	}

	checkEmail(errs, in.Email)

	if len(in.Phone) < 10 {
		errs.add("phone", "Phone number must be at least 10 digits")
	} else if !digitsOnly(in.Phone) {
		errs.add("phone", "Phone number must contain only digits")
	}

	if len(in.Password) < 8 {
		errs.add("password", "Password must be at least 8 characters")
	}
	if !strings.ContainsFunc(in.Password, unicode.IsUpper) {
		errs.add("password", "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(in.Password, unicode.IsDigit) {
		errs.add("password", "Password must contain at least one number")
	}
	if c.PostForm("confirmPassword") != in.Password {
		errs.add("confirmPassword", "Passwords do not match")
	}

	if !domain.ValidRole(string(in.Role)) {
		errs.add("role", "Please select a role")
	}
	return in, errs
}

func parseLogin(c *gin.Context) (domain.LoginInput, fieldErrors) {
	errs := fieldErrors{}
	in := domain.LoginInput{
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}

	checkEmail(errs, in.Email)
	if len(in.Password) < 2 {
		errs.add("password", "Password is required")
	}
	return in, errs
}

func parseForgotPassword(c *gin.Context) (string, fieldErrors) {
	errs := fieldErrors{}
	email := strings.TrimSpace(c.PostForm("email"))
	checkEmail(errs, email)
	return email, errs
}

func parseResetPassword(c *gin.Context) (domain.ResetPasswordInput, fieldErrors) {
	errs := fieldErrors{}
	in := domain.ResetPasswordInput{
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
		Token:           c.PostForm("token"),
		Email:           strings.TrimSpace(c.PostForm("email")),
	}

	var missing []string
	if len(in.Password) < 8 {
		missing = append(missing, "at least 8 characters")
	}
	if !strings.ContainsFunc(in.Password, unicode.IsUpper) {
		missing = append(missing, "one uppercase letter")
	}
	if !strings.ContainsFunc(in.Password, unicode.IsLower) {
		missing = append(missing, "one lowercase letter")
	}
	if !strings.ContainsFunc(in.Password, unicode.IsDigit) {
		missing = append(missing, "one number")
	}
	if !strings.ContainsFunc(in.Password, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		missing = append(missing, "one special character")
	}
	if len(missing) > 0 {
		errs.add("password", "Password must contain: "+strings.Join(missing, ", "))
	}

	if in.ConfirmPassword != in.Password {
		errs.add("confirmPassword", "Passwords don't match")
	}
	if in.Token == "" {
		errs.add("token", "Reset token is missing")
	}
	return in, errs
}

func parseLocation(c *gin.Context, field string, errs fieldErrors) domain.Location {
	latStr := c.PostForm("latitude")
	lngStr := c.PostForm("longitude")
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latStr == "" || lngStr == "" || latErr != nil || lngErr != nil {
		errs.add(field, "Location is required")
		return domain.Location{}
	}
	return domain.Location{Coordinates: []float64{lat, lng}, Type: "Point"}
}

func parseDonorProfile(c *gin.Context) (domain.DonorProfileInput, fieldErrors) {
	errs := fieldErrors{}
	in := domain.DonorProfileInput{
		Name:             strings.TrimSpace(c.PostForm("name")),
		EmergencyContact: strings.TrimSpace(c.PostForm("emergencyContact")),
		Address:          strings.TrimSpace(c.PostForm("address")),
		BloodType:        domain.BloodType(c.PostForm("bloodType")),
		IsAvailable:      c.PostForm("isAvailable") != "false",
	}

	if len(in.Name) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}

	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil || age < 18 || age > 65 {
		errs.add("age", "Age must be between 18 and 65")
	}
	in.Age = age

	if in.Address == "" {
		errs.add("address", "Address is required")
	}
	if !domain.ValidBloodType(string(in.BloodType)) {
		errs.add("bloodType", "Select a valid blood type")
	}
	if in.EmergencyContact != "" && (len(in.EmergencyContact) < 10 || !digitsOnly(in.EmergencyContact)) {
		errs.add("emergencyContact", "Emergency contact must be at least 10 digits")
	}
	in.Location = parseLocation(c, "location", errs)
	return in, errs
}

func parseHospitalProfile(c *gin.Context) (domain.HospitalProfileInput, fieldErrors) {
	errs := fieldErrors{}
	in := domain.HospitalProfileInput{
		HospitalName:     strings.TrimSpace(c.PostForm("hospitalName")),
		LicenceNumber:    strings.TrimSpace(c.PostForm("licenceNumber")),
		HospitalType:     domain.HospitalType(c.PostForm("hospitalType")),
		Address:          strings.TrimSpace(c.PostForm("address")),
		EmergencyPhoneNo: strings.TrimSpace(c.PostForm("emergencyPhoneNo")),
		Website:          strings.TrimSpace(c.PostForm("website")),
		HospitalStatus:   domain.HospitalStatus(c.PostForm("hospitalStatus")),
		WorkingHours:     strings.TrimSpace(c.PostForm("workingHours")),
		Description:      strings.TrimSpace(c.PostForm("description")),
	}

	if len(in.HospitalName) < 2 {
		errs.add("hospitalName", "Hospital name must be at least 2 characters")
	}
	if in.LicenceNumber == "" {
		errs.add("licenceNumber", "Licence number is required")
	}
	if !domain.ValidHospitalType(string(in.HospitalType)) {
		errs.add("hospitalType", "Select a valid hospital type")
	}

	year, err := strconv.Atoi(c.PostForm("establishmentYear"))
	if err != nil || year < 1800 || year > time.Now().Year() {
		errs.add("establishmentYear", "Enter a valid establishment year")
	}
	in.EstablishmentYear = year

	if in.Address == "" {
		errs.add("address", "Address is required")
	}
	if len(in.EmergencyPhoneNo) < 10 || !digitsOnly(in.EmergencyPhoneNo) {
		errs.add("emergencyPhoneNo", "Emergency phone must be at least 10 digits")
	}
	if in.HospitalStatus == "" {
		in.HospitalStatus = domain.HospitalOpened
	} else if !domain.ValidHospitalStatus(string(in.HospitalStatus)) {
		errs.add("hospitalStatus", "Select a valid hospital status")
	}
	if in.WorkingHours == "" {
		errs.add("workingHours", "Working hours are required")
	}
	in.ServiceArea = parseLocation(c, "serviceArea", errs)
	return in, errs
}

func parseBloodRequest(c *gin.Context) (domain.BloodRequestInput, fieldErrors) {
	errs := fieldErrors{}
	in := domain.BloodRequestInput{
		BloodType:  domain.BloodType(c.PostForm("bloodType")),
		Urgency:    domain.Urgency(c.PostForm("urgency")),
		ExpiryTime: strings.TrimSpace(c.PostForm("expiryTime")),
	}

	if !domain.ValidBloodType(string(in.BloodType)) {
		errs.add("bloodType", "Select a valid blood type")
	}

	units, err := strconv.Atoi(c.PostForm("unitsRequired"))
	if err != nil || units < 1 {
		errs.add("unitsRequired", "At least one unit is required")
	}
	in.UnitsRequired = units

	if !domain.ValidUrgency(string(in.Urgency)) {
		errs.add("urgency", "Select a valid urgency level")
	}

	if in.ExpiryTime == "" {
		errs.add("expiryTime", "Expiry time is required")
	} else if expiry, err := time.Parse(time.RFC3339, in.ExpiryTime); err != nil {
		errs.add("expiryTime", "Expiry time must be a valid timestamp")
	} else if !expiry.After(time.Now()) {
		errs.add("expiryTime", "Expiry time must be in the future")
	}
	return in, errs
}
