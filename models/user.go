package models

// User is a patient record created at sign-up. The password is stored and
// compared as plaintext by the directory, matching the backend contract.
type User struct {
	ID       FlexID  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	DOB      string  `json:"dob"`
	Gender   string  `json:"gender"`
	Address  Address `json:"address"`
	Image    string  `json:"image"`
}

// Admin is a panel login record, looked up by email and password.
type Admin struct {
	ID       FlexID `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token"`
}
