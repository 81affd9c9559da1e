package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/inventory"
	"github.com/heartmarshall/homestock-backend/internal/service/summary"
)

type fakeSummary struct {
	getSummary   func(ctx context.Context, kind domain.EntityKind) (domain.Summary, error)
	getDashboard func(ctx context.Context) (domain.Dashboard, error)
	evaluate     func(ctx context.Context, id uuid.UUID) (domain.Evaluation, error)
	refresh      func(ctx context.Context) (summary.RefreshReport, error)
}

func (f *fakeSummary) GetSummary(ctx context.Context, kind domain.EntityKind) (domain.Summary, error) {
	return f.getSummary(ctx, kind)
}

func (f *fakeSummary) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	return f.getDashboard(ctx)
}

func (f *fakeSummary) EvaluateEntity(ctx context.Context, id uuid.UUID) (domain.Evaluation, error) {
	return f.evaluate(ctx, id)
}

func (f *fakeSummary) Refresh(ctx context.Context) (summary.RefreshReport, error) {
	return f.refresh(ctx)
}

type fakeInventory struct {
	create func(ctx context.Context, in inventory.CreateInput) (domain.TrackedEntity, error)
	update func(ctx context.Context, in inventory.UpdateInput) (domain.TrackedEntity, error)
	record func(ctx context.Context, in inventory.RecordEventInput) (domain.TrackedEntity, error)
	adjust func(ctx context.Context, in inventory.AdjustQuantityInput) (domain.TrackedEntity, error)
	delete func(ctx context.Context, id uuid.UUID) error
	get    func(ctx context.Context, id uuid.UUID) (domain.TrackedEntity, error)
	list   func(ctx context.Context, in inventory.ListInput) ([]domain.TrackedEntity, error)
}

func (f *fakeInventory) Create(ctx context.Context, in inventory.CreateInput) (domain.TrackedEntity, error) {
	return f.create(ctx, in)
}

func (f *fakeInventory) Update(ctx context.Context, in inventory.UpdateInput) (domain.TrackedEntity, error) {
	return f.update(ctx, in)
}

func (f *fakeInventory) RecordEvent(ctx context.Context, in inventory.RecordEventInput) (domain.TrackedEntity, error) {
	return f.record(ctx, in)
}

func (f *fakeInventory) AdjustQuantity(ctx context.Context, in inventory.AdjustQuantityInput) (domain.TrackedEntity, error) {
	return f.adjust(ctx, in)
}

func (f *fakeInventory) Delete(ctx context.Context, id uuid.UUID) error {
	return f.delete(ctx, id)
}

func (f *fakeInventory) Get(ctx context.Context, id uuid.UUID) (domain.TrackedEntity, error) {
	return f.get(ctx, id)
}

func (f *fakeInventory) List(ctx context.Context, in inventory.ListInput) ([]domain.TrackedEntity, error) {
	return f.list(ctx, in)
}

type fakeAudit struct {
	byEntity func(ctx context.Context, kind domain.EntityKind, id uuid.UUID, limit int) ([]domain.AuditEntry, error)
	byActor  func(ctx context.Context, actor uuid.UUID, limit int) ([]domain.AuditEntry, error)
	recent   func(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

func (f *fakeAudit) ByEntity(ctx context.Context, kind domain.EntityKind, id uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	return f.byEntity(ctx, kind, id, limit)
}

func (f *fakeAudit) ByActor(ctx context.Context, actor uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	return f.byActor(ctx, actor, limit)
}

func (f *fakeAudit) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return f.recent(ctx, limit)
}

type fakeNotifications struct {
	unreadCount func(ctx context.Context) (int, error)
	list        func(ctx context.Context, unreadOnly bool, limit int) ([]domain.Notification, error)
	markRead    func(ctx context.Context, id uuid.UUID) error
	markAllRead func(ctx context.Context) (int64, error)
}

func (f *fakeNotifications) UnreadCount(ctx context.Context) (int, error) {
	return f.unreadCount(ctx)
}

func (f *fakeNotifications) List(ctx context.Context, unreadOnly bool, limit int) ([]domain.Notification, error) {
	return f.list(ctx, unreadOnly, limit)
}

func (f *fakeNotifications) MarkRead(ctx context.Context, id uuid.UUID) error {
	return f.markRead(ctx, id)
}

func (f *fakeNotifications) MarkAllRead(ctx context.Context) (int64, error) {
	return f.markAllRead(ctx)
}
