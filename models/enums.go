package models

// ── Room ──

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
	RoomOutOfOrder  RoomStatus = "out_of_order"
)

var RoomStatuses = []RoomStatus{RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning, RoomOutOfOrder}

func (s RoomStatus) Valid() bool {
	for _, v := range RoomStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ── Staff / Department ──

type StaffStatus string

const (
	StaffActive    StaffStatus = "Active"
	StaffInactive  StaffStatus = "Inactive"
	StaffSuspended StaffStatus = "Suspended"
)

func (s StaffStatus) Valid() bool {
	switch s {
	case StaffActive, StaffInactive, StaffSuspended:
		return true
	}
	return false
}

type DepartmentStatus string

const (
	DepartmentActive   DepartmentStatus = "Active"
	DepartmentInactive DepartmentStatus = "Inactive"
)

func (s DepartmentStatus) Valid() bool {
	return s == DepartmentActive || s == DepartmentInactive
}

// ── Attendance ──

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceHalfDay AttendanceStatus = "Half Day"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay:
		return true
	}
	return false
}

// RequiresCheckIn reports whether a check-in time is mandatory for the status.
func (s AttendanceStatus) RequiresCheckIn() bool {
	return s == AttendancePresent || s == AttendanceLate
}

// ── Orders / KOT ──

type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeaway || t == OrderDelivery
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderPrepared   OrderStatus = "prepared"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderInProgress: 1,
	OrderPrepared:   2,
	OrderCompleted:  3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderRank[s]
	return ok || s == OrderCancelled
}

// Open reports whether the order still belongs on the kitchen board.
func (s OrderStatus) Open() bool {
	return s == OrderPending || s == OrderInProgress || s == OrderPrepared
}

// CanTransition reports whether an order may move from s to next. Orders
// move forward one step at a time; cancelling is allowed before the kitchen
// finishes.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if next == OrderCancelled {
		return s == OrderPending || s == OrderInProgress
	}
	from, ok1 := orderRank[s]
	to, ok2 := orderRank[next]
	return ok1 && ok2 && to == from+1
}

type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemInProgress ItemStatus = "in_progress"
	ItemPrepared   ItemStatus = "prepared"
)

func (s ItemStatus) Valid() bool {
	return s == ItemPending || s == ItemInProgress || s == ItemPrepared
}

// CanTransition allows items to move forward only.
func (s ItemStatus) CanTransition(next ItemStatus) bool {
	switch s {
	case ItemPending:
		return next == ItemInProgress || next == ItemPrepared
	case ItemInProgress:
		return next == ItemPrepared
	}
	return false
}
