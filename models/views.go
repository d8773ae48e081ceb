package models

// DailyAttendance pairs a staff member with their record for one date.
// Attendance is nil when nothing was marked yet.
type DailyAttendance struct {
	Staff      Staff       `json:"staff"`
	Attendance *Attendance `json:"attendance"`
}

type DashboardSummary struct {
	Hotels        int64                `json:"hotels"`
	Rooms         int64                `json:"rooms"`
	RoomsByStatus map[RoomStatus]int64 `json:"rooms_by_status"`
	Staff         int64                `json:"staff"`
	ActiveStaff   int64                `json:"active_staff"`
	PresentToday  int64                `json:"present_today"`
	Departments   int64                `json:"departments"`
	OpenOrders    int64                `json:"open_orders"`
	OrdersToday   int64                `json:"orders_today"`
}

// AuthResult is returned by login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PermissionSet is the granted permission list of one staff member with
// the module/action matrix the permission editor renders.
type PermissionSet struct {
	StaffID     uint                       `json:"staff_id"`
	Permissions []string                   `json:"permissions"`
	Matrix      map[string]map[string]bool `json:"matrix"`
}
