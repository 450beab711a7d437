package http

import (
	"dashgen/internal/dataset"
	"dashgen/internal/model"
)

// --- Request DTOs ---

type ingestReq struct {
	SessionID   string                `json:"session_id"`
	ProfilePath string                `json:"profile_path"`
	Profile     *model.DatasetProfile `json:"profile"`
}

func (r ingestReq) toInput() dataset.IngestInput {
	return dataset.IngestInput{
		SessionID:   r.SessionID,
		ProfilePath: r.ProfilePath,
		Profile:     r.Profile,
	}
}

// --- Response DTOs ---

type ingestResp struct {
	SessionID   string `json:"session_id"`
	DatasetName string `json:"dataset_name"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
}

func (h *handler) newIngestResp(out dataset.IngestOutput) ingestResp {
	return ingestResp{
		SessionID:   out.SessionID,
		DatasetName: out.DatasetName,
		Rows:        out.Rows,
		Columns:     out.Columns,
	}
}

type sampleResp struct {
	Profile model.DatasetProfile `json:"profile"`
}

func (h *handler) newSampleResp(p model.DatasetProfile) sampleResp {
	return sampleResp{Profile: p}
}
