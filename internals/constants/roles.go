package constants

import "fmt"

const (
	RoleAdmin    = "ADMIN"
	RoleTeacher  = "TEACHER"
	RoleStudent  = "STUDENT"
	RoleGuardian = "GUARDIAN"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess = "Only administrators may access %s."
	ErrOnlyStaffCanAccess  = "Only teachers or administrators may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleGuardian,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
