package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dashgen/internal/model"
	"dashgen/internal/session"
)

func (uc *implUseCase) Initialize(ctx context.Context, id string) (model.SessionContext, error) {
	sc, err := uc.load(ctx, id)
	if err == nil {
		return sc.Clone(), nil
	}
	if !errors.Is(err, session.ErrNotFound) {
		uc.l.Errorf(ctx, "session.usecase.Initialize: load %s failed: %v", id, err)
		return model.SessionContext{}, err
	}

	sc = model.NewSessionContext(uc.clock())
	if err := uc.save(ctx, id, sc); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Initialize: save %s failed: %v", id, err)
		return model.SessionContext{}, err
	}
	uc.l.Infof(ctx, "session.usecase.Initialize: created session %s", id)

	return sc.Clone(), nil
}

func (uc *implUseCase) UpdateDatasetProfile(ctx context.Context, id string, profile model.DatasetProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %v", session.ErrInvalidProfile, err)
	}

	return uc.mutate(ctx, id, func(sc *model.SessionContext) error {
		sc.DatasetProfile = &profile
		sc.SessionInfo.DatasetName = profile.Analysis.Title
		return nil
	})
}

func (uc *implUseCase) AddUserInput(ctx context.Context, id, text, command string) error {
	return uc.mutate(ctx, id, func(sc *model.SessionContext) error {
		sc.UserInputs = append(sc.UserInputs, model.UserInput{
			Timestamp: uc.clock(),
			Text:      text,
			Command:   command,
		})
		return nil
	})
}

func (uc *implUseCase) AddAnalysisResult(ctx context.Context, id, resultType string, payload any, command string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	return uc.mutate(ctx, id, func(sc *model.SessionContext) error {
		sc.AnalysisHistory = append(sc.AnalysisHistory, model.AnalysisResult{
			Timestamp: uc.clock(),
			Type:      resultType,
			Payload:   raw,
			Command:   command,
		})
		return nil
	})
}

func (uc *implUseCase) AdvanceTurn(ctx context.Context, id string) (model.SessionContext, error) {
	var out model.SessionContext
	err := uc.mutate(ctx, id, func(sc *model.SessionContext) error {
		advanceTurn(sc)
		out = sc.Clone()
		return nil
	})
	if err != nil {
		return model.SessionContext{}, err
	}
	return out, nil
}

func (uc *implUseCase) RecordTurn(ctx context.Context, id, text, command string) (model.SessionContext, error) {
	var out model.SessionContext
	err := uc.mutate(ctx, id, func(sc *model.SessionContext) error {
		sc.UserInputs = append(sc.UserInputs, model.UserInput{
			Timestamp: uc.clock(),
			Text:      text,
			Command:   command,
		})
		advanceTurn(sc)
		out = sc.Clone()
		return nil
	})
	if err != nil {
		return model.SessionContext{}, err
	}
	return out, nil
}

// advanceTurn applies the turn transition in place: increment below the
// cap, complete at the cap, no-op once complete.
func advanceTurn(sc *model.SessionContext) {
	if sc.SessionInfo.ConversationComplete {
		return
	}
	if sc.SessionInfo.CurrentTurn < model.MaxConversationTurns {
		sc.SessionInfo.CurrentTurn++
	} else {
		sc.SessionInfo.ConversationComplete = true
	}
}

func (uc *implUseCase) Profile(ctx context.Context, id string) (*model.DatasetProfile, error) {
	sc, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sc.DatasetProfile == nil {
		return nil, nil
	}
	cp := sc.Clone()
	return cp.DatasetProfile, nil
}

func (uc *implUseCase) Snapshot(ctx context.Context, id string) (model.SessionContext, error) {
	sc, err := uc.load(ctx, id)
	if err != nil {
		return model.SessionContext{}, err
	}
	return sc.Clone(), nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.cache.Remove(id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Delete: %s failed: %v", id, err)
		return err
	}
	return nil
}

// mutate runs the load-modify-save cycle shared by every write path.
// LastUpdated is touched on every successful mutation.
func (uc *implUseCase) mutate(ctx context.Context, id string, fn func(*model.SessionContext) error) error {
	sc, err := uc.load(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase: load %s failed: %v", id, err)
		return err
	}

	if err := fn(&sc); err != nil {
		return err
	}
	sc.SessionInfo.LastUpdated = uc.clock()

	if err := uc.save(ctx, id, sc); err != nil {
		uc.l.Errorf(ctx, "session.usecase: save %s failed: %v", id, err)
		return err
	}
	return nil
}

// load and save clone at the cache boundary so cached contexts never
// share backing arrays with values callers go on to mutate.
func (uc *implUseCase) load(ctx context.Context, id string) (model.SessionContext, error) {
	if sc, ok := uc.cache.Get(id); ok {
		return sc.Clone(), nil
	}
	sc, err := uc.repo.Load(ctx, id)
	if err != nil {
		return model.SessionContext{}, err
	}
	uc.cache.Add(id, sc.Clone())
	return sc, nil
}

func (uc *implUseCase) save(ctx context.Context, id string, sc model.SessionContext) error {
	if err := uc.repo.Save(ctx, id, sc); err != nil {
		return err
	}
	uc.cache.Add(id, sc.Clone())
	return nil
}
