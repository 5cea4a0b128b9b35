package models

import "time"

// Student represents a program member
type Student struct {
	ID        int64     `json:"id" db:"student_id"`
	FirstName string    `json:"firstName" db:"stud_first_name"`
	LastName  string    `json:"lastName" db:"stud_last_name"`
	Email     string    `json:"email" db:"stud_email"`
	Phone     string    `json:"phone" db:"stud_phone_number"`
	Gender    string    `json:"gender,omitempty" db:"stud_gender"`
	Age       *int      `json:"age,omitempty" db:"stud_age"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
