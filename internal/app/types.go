package app

import "llm-game-gen/internal/types"

type GenerateRequest struct {
	SpecPath string
	DataDir  string
	Backend  string
	Model    string
	Host     string
	Theme    string
	Rooms    int
	Items    int
	Attempts int
	Output   string
}

type GenerateResult struct {
	PackPath string
	Attempts int
	Rooms    int
	Items    int
}

type LoadRequest struct {
	PackPath string
}

type LoadResult struct {
	PackName string
	Data     types.GameData
}

type ValidateRequest struct {
	PackPath string
}

type ValidateResult struct {
	PackName     string
	Rooms        int
	Items        int
	Objective    string
	StartingRoom string
}

type LockRequest struct {
	SpecPath string
	DataDir  string
	Output   string
}

type LockResult struct {
	LockPath string
	Records  int
}

type VerifyRequest struct {
	DataDir  string
	LockPath string
}

type VerifyResult struct {
	Records  int
	Verified int
}

type InspectRequest struct {
	LockPath string
}

type InspectRecordSummary struct {
	Name    string
	Version string
	Hashes  int
	Via     []string
}

type InspectResult struct {
	Root    string
	Records []InspectRecordSummary
}
