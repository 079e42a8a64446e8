package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type AdminUser struct {
	ID           string `json:"id" db:"id"`
	Username     string `json:"username" db:"username" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}

// Session is the persisted proof of admin authentication. It stays valid
// while now - LoginTime is under session.SessionDuration.
type Session struct {
	ID        string `json:"id" db:"id"`
	AdminID   string `json:"admin_id" db:"admin_id"`
	Username  string `json:"username" db:"username"`
	Email     string `json:"email" db:"email"`
	LoginTime int64  `json:"login_time" db:"login_time"`
}

type Enquiry struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
	Location  string `json:"location" db:"location"`
	Service   string `json:"service" db:"service"`
	Message   string `json:"message" db:"message"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

type CareerApplication struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email" db:"email"`
	Phone       string `json:"phone" db:"phone"`
	Location    string `json:"location" db:"location"`
	Position    string `json:"position" db:"position"`
	Experience  string `json:"experience" db:"experience"`
	Resume      string `json:"resume" db:"resume"`
	CoverLetter string `json:"cover_letter" db:"cover_letter"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

type BlogPost struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Content     string `json:"content" db:"content"`
	Image       string `json:"image" db:"image"`
	Category    string `json:"category" db:"category"`
	Author      string `json:"author" db:"author"`
	ReadTime    string `json:"read_time" db:"read_time"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
	UpdatedAt   int64  `json:"updated_at" db:"updated_at"`
}
