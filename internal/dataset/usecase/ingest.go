package usecase

import (
	"context"

	"dashgen/internal/dataset"
	"dashgen/internal/model"
)

func (uc *implUseCase) Ingest(ctx context.Context, input dataset.IngestInput) (dataset.IngestOutput, error) {
	var p model.DatasetProfile
	switch {
	case input.Profile != nil:
		p = *input.Profile
	case input.ProfilePath != "":
		loaded, err := uc.profiler.Profile(ctx, input.ProfilePath)
		if err != nil {
			uc.l.Errorf(ctx, "dataset.usecase.Ingest: profile load failed: %v", err)
			return dataset.IngestOutput{}, err
		}
		p = loaded
	default:
		return dataset.IngestOutput{}, dataset.ErrNoProfile
	}

	id := input.SessionID
	if id == "" {
		id = uc.newID()
		if _, err := uc.sessions.Initialize(ctx, id); err != nil {
			return dataset.IngestOutput{}, err
		}
	}

	if err := uc.sessions.UpdateDatasetProfile(ctx, id, p); err != nil {
		return dataset.IngestOutput{}, err
	}

	uc.l.Infof(ctx, "dataset.usecase.Ingest: bound dataset %q to session %s", p.Analysis.Title, id)

	return dataset.IngestOutput{
		SessionID:   id,
		DatasetName: p.Analysis.Title,
		Rows:        p.Table.N,
		Columns:     p.Table.NVar,
	}, nil
}

func (uc *implUseCase) Sample() model.DatasetProfile {
	return dataset.SampleProfile()
}
