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

// TrainerFormView is the modal state handed to the presentation layer.
type TrainerFormView struct {
	Open             bool               `json:"open"`
	Mode             Mode               `json:"mode"`
	EntityID         string             `json:"entity_id,omitempty"`
	Fields           dto.TrainerRequest `json:"fields"`
	UsernameEditable bool               `json:"username_editable"`
	PasswordRequired bool               `json:"password_required"`
	Error            string             `json:"error,omitempty"`
}

// TrainerForm drives the create/edit trainer modal.
type TrainerForm struct {
	client *clients.GymClient
	cache  *cache.Cache
	logger *zap.Logger

	mu       sync.Mutex
	open     bool
	mode     Mode
	entityID string
	fields   dto.TrainerRequest
	lastErr  string
}

// NewTrainerForm builds the controller.
func NewTrainerForm(client *clients.GymClient, dataCache *cache.Cache, logger *zap.Logger) *TrainerForm {
	return &TrainerForm{client: client, cache: dataCache, logger: logger}
}

// Open enters create mode when entityID is empty, otherwise edit mode with
// fields populated from the cached entity.
func (f *TrainerForm) Open(snap cache.Snapshot, entityID string) TrainerFormView {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open = true
	f.lastErr = ""
	if entityID == "" {
		f.mode = ModeCreate
		f.entityID = ""
		f.fields = dto.TrainerRequest{
			SalaryStatus: string(domain.PaymentUnpaid),
			Status:       string(domain.StatusActive),
		}
		return f.viewLocked()
	}

	f.mode = ModeEdit
	f.entityID = entityID
	if t, ok := snap.TrainerByID(entityID); ok {
		f.fields = dto.TrainerRequest{
			Name:            t.Name,
			Username:        t.Username,
			Specialization:  t.Specialization,
			ExperienceYears: t.ExperienceYears,
			SalaryStatus:    string(t.SalaryStatus),
			Status:          string(t.Status),
		}
	} else {
		f.fields = dto.TrainerRequest{}
	}
	return f.viewLocked()
}

// Submit validates the fields and performs the mutation, mirroring the member
// form's open-on-failure, close-and-refresh-on-success lifecycle.
func (f *TrainerForm) Submit(ctx context.Context, fields dto.TrainerRequest) error {
	f.mu.Lock()
	mode, entityID := f.mode, f.entityID
	f.mu.Unlock()

	if err := validateTrainer(mode, fields); err != nil {
		f.recordErr(err)
		return err
	}

	var err error
	if mode == ModeEdit {
		fields.Username = ""
		fields.Password = ""
		err = f.client.UpdateTrainer(ctx, entityID, fields)
	} else {
		err = f.client.CreateTrainer(ctx, fields)
	}
	if err != nil {
		f.recordErr(err)
		return err
	}

	if err := f.cache.Refresh(ctx); err != nil {
		f.logger.Warn("cache refresh after trainer mutation failed", zap.Error(err))
	}

	f.mu.Lock()
	f.open = false
	f.lastErr = ""
	f.fields = dto.TrainerRequest{}
	f.mu.Unlock()
	return nil
}

// Delete removes the trainer and rebuilds the cache.
func (f *TrainerForm) Delete(ctx context.Context, entityID string) error {
	if err := f.client.DeleteTrainer(ctx, entityID); err != nil {
		return err
	}
	if err := f.cache.Refresh(ctx); err != nil {
		f.logger.Warn("cache refresh after trainer delete failed", zap.Error(err))
	}
	return nil
}

// Close dismisses the modal without submitting.
func (f *TrainerForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.lastErr = ""
	f.fields = dto.TrainerRequest{}
}

// View returns the current modal state.
func (f *TrainerForm) View() TrainerFormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewLocked()
}

func (f *TrainerForm) viewLocked() TrainerFormView {
	return TrainerFormView{
		Open:             f.open,
		Mode:             f.mode,
		EntityID:         f.entityID,
		Fields:           f.fields,
		UsernameEditable: f.mode == ModeCreate,
		PasswordRequired: f.mode == ModeCreate,
		Error:            f.lastErr,
	}
}

func (f *TrainerForm) recordErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastErr = util.ToClientError(err).Message
}

func validateTrainer(mode Mode, fields dto.TrainerRequest) error {
	if fields.Name == "" {
		return util.NewValidationError("name is required")
	}
	if fields.Specialization == "" {
		return util.NewValidationError("specialization is required")
	}
	if mode == ModeCreate {
		if fields.Username == "" {
			return util.NewValidationError("username is required")
		}
		if fields.Password == "" {
			return util.NewValidationError("password is required")
		}
	}
	return nil
}
