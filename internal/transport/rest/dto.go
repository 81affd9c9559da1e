package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/summary"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createEntityRequest struct {
	Kind            string            `json:"kind"`
	Name            string            `json:"name"`
	Quantity        *int              `json:"quantity"`
	Threshold       int               `json:"threshold"`
	IntervalSeconds *int64            `json:"intervalSeconds"`
	UnitPrice       decimal.Decimal   `json:"unitPrice"`
	Frequency       string            `json:"frequency"`
	LastEventAt     *time.Time        `json:"lastEventAt"`
	EndsAt          *time.Time        `json:"endsAt"`
	Metadata        map[string]string `json:"metadata"`
}

type updateEntityRequest struct {
	Name            *string           `json:"name"`
	Quantity        *int              `json:"quantity"`
	Threshold       *int              `json:"threshold"`
	IntervalSeconds *int64            `json:"intervalSeconds"`
	ClearInterval   bool              `json:"clearInterval"`
	UnitPrice       *decimal.Decimal  `json:"unitPrice"`
	Frequency       *string           `json:"frequency"`
	EndsAt          *time.Time        `json:"endsAt"`
	Metadata        map[string]string `json:"metadata"`
}

type recordEventRequest struct {
	At       *time.Time `json:"at"`
	Quantity *int       `json:"quantity"`
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

func seconds(s *int64) *time.Duration {
	if s == nil {
		return nil
	}
	d := time.Duration(*s) * time.Second
	return &d
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type entityResponse struct {
	ID              string            `json:"id"`
	Kind            string            `json:"kind"`
	Name            string            `json:"name"`
	Quantity        *int              `json:"quantity,omitempty"`
	Threshold       int               `json:"threshold"`
	IntervalSeconds *int64            `json:"intervalSeconds,omitempty"`
	UnitPrice       decimal.Decimal   `json:"unitPrice"`
	Frequency       string            `json:"frequency,omitempty"`
	LastEventAt     *time.Time        `json:"lastEventAt,omitempty"`
	EndsAt          *time.Time        `json:"endsAt,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func toEntityResponse(e domain.TrackedEntity) entityResponse {
	resp := entityResponse{
		ID:          e.ID.String(),
		Kind:        e.Kind.String(),
		Name:        e.Name,
		Quantity:    e.Quantity,
		Threshold:   e.Threshold,
		UnitPrice:   e.UnitPrice,
		Frequency:   e.Frequency,
		LastEventAt: e.LastEventAt,
		EndsAt:      e.EndsAt,
		Metadata:    e.Metadata,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Interval != nil {
		s := int64(e.Interval.Seconds())
		resp.IntervalSeconds = &s
	}
	return resp
}

func toEntityResponses(es []domain.TrackedEntity) []entityResponse {
	out := make([]entityResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toEntityResponse(e))
	}
	return out
}

type evaluationResponse struct {
	EntityID string     `json:"entityId"`
	Kind     string     `json:"kind"`
	Name     string     `json:"name"`
	Needed   bool       `json:"needed"`
	Reason   string     `json:"reason"`
	Status   string     `json:"status"`
	NextDue  *time.Time `json:"nextDue"`
}

func toEvaluationResponse(ev domain.Evaluation) evaluationResponse {
	return evaluationResponse{
		EntityID: ev.EntityID.String(),
		Kind:     ev.Kind.String(),
		Name:     ev.Name,
		Needed:   ev.Needed,
		Reason:   ev.Reason.String(),
		Status:   ev.Status.String(),
		NextDue:  ev.NextDue,
	}
}

type recentEventResponse struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type summaryResponse struct {
	Kind        string                `json:"kind"`
	Total       int                   `json:"total"`
	NeedsAction int                   `json:"needsAction"`
	DueSoon     int                   `json:"dueSoon"`
	Overdue     int                   `json:"overdue"`
	Skipped     int                   `json:"skipped"`
	TotalValue  decimal.Decimal       `json:"totalValue"`
	Recent      []recentEventResponse `json:"recent"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

func toSummaryResponse(s domain.Summary) summaryResponse {
	recent := make([]recentEventResponse, 0, len(s.Recent))
	for _, e := range s.Recent {
		recent = append(recent, recentEventResponse{ID: e.ID.String(), Name: e.Name, Date: e.Date})
	}
	return summaryResponse{
		Kind:        s.Kind.String(),
		Total:       s.Total,
		NeedsAction: s.NeedsAction,
		DueSoon:     s.DueSoon,
		Overdue:     s.Overdue,
		Skipped:     s.Skipped,
		TotalValue:  s.TotalValue,
		Recent:      recent,
		GeneratedAt: s.GeneratedAt,
	}
}

type dashboardResponse struct {
	StockItems  summaryResponse `json:"stockItems"`
	Warranties  summaryResponse `json:"warranties"`
	Maintenance summaryResponse `json:"maintenance"`
}

type refreshResponse struct {
	StartedAt    time.Time `json:"startedAt"`
	Duration     string    `json:"duration"`
	Owners       int       `json:"owners"`
	Summaries    int       `json:"summaries"`
	Entities     int       `json:"entities"`
	Skipped      int       `json:"skipped"`
	Notified     int       `json:"notified"`
	NotifyErrors int       `json:"notifyErrors"`
	Shared       bool      `json:"shared"`
}

func toRefreshResponse(r summary.RefreshReport) refreshResponse {
	return refreshResponse{
		StartedAt:    r.StartedAt,
		Duration:     r.Duration.String(),
		Owners:       r.Owners,
		Summaries:    r.Summaries,
		Entities:     r.Entities,
		Skipped:      r.Skipped,
		Notified:     r.Notified,
		NotifyErrors: r.NotifyErrors,
		Shared:       r.Shared,
	}
}

type auditEntryResponse struct {
	ID         string         `json:"id"`
	Seq        int64          `json:"seq"`
	ActorID    string         `json:"actorId"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	OldValue   map[string]any `json:"oldValue"`
	NewValue   map[string]any `json:"newValue"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponses(es []domain.AuditEntry) []auditEntryResponse {
	out := make([]auditEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, auditEntryResponse{
			ID:         e.ID.String(),
			Seq:        e.Seq,
			ActorID:    e.ActorID.String(),
			Action:     e.Action.String(),
			EntityType: e.EntityType.String(),
			EntityID:   e.EntityID.String(),
			OldValue:   e.OldValue,
			NewValue:   e.NewValue,
			IP:         e.IP,
			UserAgent:  e.UserAgent,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

type notificationResponse struct {
	ID        string         `json:"id"`
	EntityID  *string        `json:"entityId,omitempty"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"readAt,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toNotificationResponses(ns []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(ns))
	for _, n := range ns {
		resp := notificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type.String(),
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			ReadAt:    n.ReadAt,
			Metadata:  n.Metadata,
			CreatedAt: n.CreatedAt,
		}
		if n.EntityID != nil {
			id := n.EntityID.String()
			resp.EntityID = &id
		}
		out = append(out, resp)
	}
	return out
}
