package models

// Doctor is a directory record for a practicing doctor. Available is a flag
// toggled from the admin panel, it is not derived from schedule occupancy.
type Doctor struct {
	ID         FlexID  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Speciality string  `json:"speciality"`
	Degree     string  `json:"degree"`
	Experience string  `json:"experience"`
	About      string  `json:"about"`
	Fees       float64 `json:"fees"`
	Available  bool    `json:"available"`
	Image      string  `json:"image"`
	Address    Address `json:"address"`
}
