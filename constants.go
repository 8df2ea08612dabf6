package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeTaskInput
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmDeleteSelection ConfirmAction = iota
	ConfirmQuit
	ConfirmClearGraph
	ConfirmCloseBuffer
	ConfirmOverwriteFile
)

// Gesture tuning. Pointer movement below the threshold resolves to a click.
const (
	dragThreshold   = 5.0
	dragThresholdSq = dragThreshold * dragThreshold
)

// Task box dimensions in world units.
const (
	minBoxWidth = 8.0
	boxHeight   = 3.0
)

// Viewport limits and the snap window around the 1x baseline.
const (
	minZoom           = 0.1
	maxZoom           = 10.0
	zoomSnapTolerance = 0.1
	wheelZoomIn       = 1.1
	wheelZoomOut      = 0.9
)
