package forms

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/api/dto"
	"github.com/gymkit/dashboard/internal/cache"
	"github.com/gymkit/dashboard/internal/clients"
	"github.com/gymkit/dashboard/internal/domain"
	"github.com/gymkit/dashboard/pkg/util"
)

// Mode distinguishes create from edit.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// MemberFormView is the modal state handed to the presentation layer.
type MemberFormView struct {
	Open             bool              `json:"open"`
	Mode             Mode              `json:"mode"`
	EntityID         string            `json:"entity_id,omitempty"`
	Fields           dto.MemberRequest `json:"fields"`
	UsernameEditable bool              `json:"username_editable"`
	PasswordRequired bool              `json:"password_required"`
	Error            string            `json:"error,omitempty"`
}

// MemberForm drives the create/edit member modal: open populates fields,
// submit validates and calls the API, and a successful mutation closes the
// modal and rebuilds the cache.
type MemberForm struct {
	client *clients.GymClient
	cache  *cache.Cache
	logger *zap.Logger

	mu       sync.Mutex
	open     bool
	mode     Mode
	entityID string
	fields   dto.MemberRequest
	lastErr  string
}

// NewMemberForm builds the controller.
func NewMemberForm(client *clients.GymClient, dataCache *cache.Cache, logger *zap.Logger) *MemberForm {
	return &MemberForm{client: client, cache: dataCache, logger: logger}
}

// Open enters create mode when entityID is empty, otherwise edit mode with
// fields populated from the cached entity. Username is immutable once the
// entity exists; password is required only at creation.
func (f *MemberForm) Open(snap cache.Snapshot, entityID string) MemberFormView {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open = true
	f.lastErr = ""
	if entityID == "" {
		f.mode = ModeCreate
		f.entityID = ""
		f.fields = dto.MemberRequest{
			Plan:          string(domain.PlanBasic),
			PaymentStatus: string(domain.PaymentUnpaid),
			Status:        string(domain.StatusActive),
		}
		return f.viewLocked()
	}

	f.mode = ModeEdit
	f.entityID = entityID
	if m, ok := snap.MemberByID(entityID); ok {
		f.fields = dto.MemberRequest{
			Name:          m.Name,
			Username:      m.Username,
			Email:         m.Email,
			Phone:         m.Phone,
			Plan:          string(m.Plan),
			TrainerID:     m.TrainerID,
			PaymentStatus: string(m.PaymentStatus),
			Status:        string(m.Status),
		}
	} else {
		f.fields = dto.MemberRequest{}
	}
	return f.viewLocked()
}

// Submit validates the fields and performs the mutation. On success the modal
// closes and the cache is rebuilt; on failure the modal stays open with the
// error recorded for display.
func (f *MemberForm) Submit(ctx context.Context, fields dto.MemberRequest) error {
	f.mu.Lock()
	mode, entityID := f.mode, f.entityID
	f.mu.Unlock()

	if err := validateMember(mode, fields); err != nil {
		f.recordErr(err)
		return err
	}

	var err error
	if mode == ModeEdit {
		// identity key never changes post-creation
		fields.Username = ""
		fields.Password = ""
		err = f.client.UpdateMember(ctx, entityID, fields)
	} else {
		err = f.client.CreateMember(ctx, fields)
	}
	if err != nil {
		f.recordErr(err)
		return err
	}

	if err := f.cache.Refresh(ctx); err != nil {
		f.logger.Warn("cache refresh after member mutation failed", zap.Error(err))
	}

	f.mu.Lock()
	f.open = false
	f.lastErr = ""
	f.fields = dto.MemberRequest{}
	f.mu.Unlock()
	return nil
}

// Delete removes the member and rebuilds the cache.
func (f *MemberForm) Delete(ctx context.Context, entityID string) error {
	if err := f.client.DeleteMember(ctx, entityID); err != nil {
		return err
	}
	if err := f.cache.Refresh(ctx); err != nil {
		f.logger.Warn("cache refresh after member delete failed", zap.Error(err))
	}
	return nil
}

// Close dismisses the modal without submitting.
func (f *MemberForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.lastErr = ""
	f.fields = dto.MemberRequest{}
}

// View returns the current modal state.
func (f *MemberForm) View() MemberFormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewLocked()
}

func (f *MemberForm) viewLocked() MemberFormView {
	return MemberFormView{
		Open:             f.open,
		Mode:             f.mode,
		EntityID:         f.entityID,
		Fields:           f.fields,
		UsernameEditable: f.mode == ModeCreate,
		PasswordRequired: f.mode == ModeCreate,
		Error:            f.lastErr,
	}
}

func (f *MemberForm) recordErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastErr = util.ToClientError(err).Message
}

func validateMember(mode Mode, fields dto.MemberRequest) error {
	if fields.Name == "" {
		return util.NewValidationError("name is required")
	}
	if mode == ModeCreate {
		if fields.Username == "" {
			return util.NewValidationError("username is required")
		}
		if fields.Password == "" {
			return util.NewValidationError("password is required")
		}
	}
	if fields.Plan == "" {
		return util.NewValidationError("plan is required")
	}
	return nil
}
