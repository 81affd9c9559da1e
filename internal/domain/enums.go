package domain

// EntityKind identifies which kind of tracked entity a record is. It doubles
// as the entity type recorded in audit entries.
type EntityKind string

const (
	EntityKindStockItem   EntityKind = "stock_item"
	EntityKindWarranty    EntityKind = "warranty"
	EntityKindMaintenance EntityKind = "maintenance"
)

// EntityKinds lists every kind in display order.
var EntityKinds = []EntityKind{EntityKindStockItem, EntityKindWarranty, EntityKindMaintenance}

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindStockItem, EntityKindWarranty, EntityKindMaintenance:
		return true
	}
	return false
}

// Reason is the condition that triggered a recommendation.
type Reason string

const (
	ReasonQuantity Reason = "quantity"
	ReasonInterval Reason = "interval"
	ReasonNone     Reason = "none"
)

func (r Reason) String() string { return string(r) }

func (r Reason) IsValid() bool {
	switch r {
	case ReasonQuantity, ReasonInterval, ReasonNone:
		return true
	}
	return false
}

// DueStatus classifies a scheduled entity relative to "now". It is always
// derived from a next-due timestamp and never stored.
type DueStatus string

const (
	DueStatusActive       DueStatus = "active"
	DueStatusScheduled    DueStatus = "scheduled"
	DueStatusDueSoon      DueStatus = "due_soon"
	DueStatusOverdue      DueStatus = "overdue"
	DueStatusExpiringSoon DueStatus = "expiring_soon"
	DueStatusExpired      DueStatus = "expired"
)

func (s DueStatus) String() string { return string(s) }

func (s DueStatus) IsValid() bool {
	switch s {
	case DueStatusActive, DueStatusScheduled, DueStatusDueSoon,
		DueStatusOverdue, DueStatusExpiringSoon, DueStatusExpired:
		return true
	}
	return false
}

// IsUpcoming reports whether the status falls inside a lookahead window.
func (s DueStatus) IsUpcoming() bool {
	return s == DueStatusDueSoon || s == DueStatusExpiringSoon
}

// IsLapsed reports whether the due date has already passed.
func (s DueStatus) IsLapsed() bool {
	return s == DueStatusOverdue || s == DueStatusExpired
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate      AuditAction = "CREATE"
	AuditActionUpdate      AuditAction = "UPDATE"
	AuditActionDelete      AuditAction = "DELETE"
	AuditActionRecordEvent AuditAction = "RECORD_EVENT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionRecordEvent:
		return true
	}
	return false
}

// NotificationType categorises a user-facing notification.
type NotificationType string

const (
	NotificationTypeRestockNeeded    NotificationType = "restock_needed"
	NotificationTypeMaintenanceDue   NotificationType = "maintenance_due"
	NotificationTypeWarrantyExpiring NotificationType = "warranty_expiring"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeRestockNeeded, NotificationTypeMaintenanceDue, NotificationTypeWarrantyExpiring:
		return true
	}
	return false
}

// NotificationTypeFor returns the notification type emitted for an entity kind.
func NotificationTypeFor(kind EntityKind) NotificationType {
	switch kind {
	case EntityKindWarranty:
		return NotificationTypeWarrantyExpiring
	case EntityKindMaintenance:
		return NotificationTypeMaintenanceDue
	default:
		return NotificationTypeRestockNeeded
	}
}
