package events

// Name identifies an event on the bus.
type Name string

// Raw host events. They are forwarded verbatim by the engine so that
// command mapping collaborators can translate them.
const (
	KeyDown     Name = "keydown"
	KeyPress    Name = "keypress"
	TouchStart  Name = "touchstart"
	TouchMove   Name = "touchmove"
	TouchEnd    Name = "touchend"
	Click       Name = "click"
	Wheel       Name = "wheel"
	ContextMenu Name = "contextmenu"
	Message     Name = "message"
	HashChange  Name = "hashchange"
)

// Semantic commands consumed by the engine.
const (
	// SlidesChanged rebuilds every slide view. Payload: none.
	SlidesChanged Name = "slidesChanged"
	// ShowSlide shows one view. Payload: int index.
	ShowSlide Name = "showSlide"
	// HideSlide hides one view. Payload: int index.
	HideSlide Name = "hideSlide"

	ForcePresenterMode  Name = "forcePresenterMode"
	TogglePresenterMode Name = "togglePresenterMode"
	ToggleHelp          Name = "toggleHelp"
	// ToggleBlackout flips blackout. Payload: optional bool explicit state.
	ToggleBlackout Name = "toggleBlackout"
	// ToggleMirrored flips mirrored. Payload: optional bool explicit state.
	ToggleMirrored Name = "toggleMirrored"
	// HideOverlay clears blackout and help in one step.
	HideOverlay Name = "hideOverlay"
	// TogglePause flips paused. Payload: optional bool explicit state.
	TogglePause      Name = "togglePause"
	ToggleFullScreen Name = "toggleFullScreen"
	// PropertiesChanged carries a map[string]string of changed options.
	PropertiesChanged Name = "propertiesChanged"
	// Resize requests a rescale against the live container geometry.
	Resize Name = "resize"
	// Tap carries the float64 x position of a tap on the container.
	Tap Name = "tap"
)

// Navigation commands consumed by the deck authority.
const (
	GoToSlide         Name = "goToSlide"
	GoToSlideNumber   Name = "goToSlideNumber"
	GoToPreviousSlide Name = "goToPreviousSlide"
	GoToNextSlide     Name = "goToNextSlide"
	GoToFirstSlide    Name = "goToFirstSlide"
	GoToLastSlide     Name = "goToLastSlide"
)

// Lifecycle notifications produced by the engine.
const (
	BeforeShowSlide Name = "beforeShowSlide"
	AfterShowSlide  Name = "afterShowSlide"
	BeforeHideSlide Name = "beforeHideSlide"
	AfterHideSlide  Name = "afterHideSlide"
	// ToggledPresenter carries the 1-based current slide number.
	ToggledPresenter Name = "toggledPresenter"
)
