// Package plugin displays a QR code encoding the latest picture's URL on the
// booth screens and optionally saves the code image next to the picture.
//
// The plugin owns no loop or state machine: the host invokes Configure and
// Startup once, ProcessingDo after each capture, and the display hooks while
// entering or redrawing the wait and print screens.
package plugin

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/prasetyowira/qrbooth/constant"
	"github.com/prasetyowira/qrbooth/domain/placement"
	appLogger "github.com/prasetyowira/qrbooth/infrastructure/logger"
	"github.com/prasetyowira/qrbooth/infrastructure/qrcode"
	"github.com/prasetyowira/qrbooth/infrastructure/storage"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Plugin implements the lifecycle hooks dispatched by the host.
type Plugin struct {
	gen    Generator
	saver  *storage.Saver
	layout TextLayout
}

// New creates the plugin. gen may be nil when no QR library is available; the
// processing hook then reports the absence at the point of use. layout may be
// nil when the host has no text-layout utility, disabling side text.
func New(gen Generator, layout TextLayout) *Plugin {
	return &Plugin{
		gen:    gen,
		saver:  storage.NewSaver(),
		layout: layout,
	}
}

// Configure declares the plugin's configuration options
func (p *Plugin) Configure(cfg Config) {
	locations := strings.Join(placement.Locations, ", ")

	cfg.AddOption(constant.SectionQRCode, constant.OptPrefixURL, "{url}",
		"URL which may be composed of variables: {picture}, {count}, {url}")
	cfg.AddOption(constant.SectionQRCode, constant.OptForeground, white,
		"Foreground color", "Color", white)
	cfg.AddOption(constant.SectionQRCode, constant.OptBackground, black,
		"Background color", "Background color", black)
	cfg.AddOption(constant.SectionQRCode, constant.OptSideText, "",
		"Optional text displayed close to the QR code", "Side text", "")
	cfg.AddOption(constant.SectionQRCode, constant.OptOffset, image.Pt(20, 40),
		"Offset (x, y) from location")
	cfg.AddOption(constant.SectionQRCode, constant.OptWaitLocation, "bottomleft",
		"Location on 'wait' state: "+locations,
		"Location on wait screen", placement.Locations)
	cfg.AddOption(constant.SectionQRCode, constant.OptPrintLocation, "bottomright",
		"Location on 'print' state: "+locations,
		"Location on print screen", placement.Locations)

	// Options for saving the QR image
	cfg.AddOption(constant.SectionQRCode, constant.OptSave, false,
		"Save the generated QR image next to the picture file")
	cfg.AddOption(constant.SectionQRCode, constant.OptSuffix, constant.DefaultSuffix,
		"Suffix to add to picture basename for saved QR file")
	cfg.AddOption(constant.SectionQRCode, constant.OptExt, constant.DefaultExt,
		"Extension for saved QR file")
	cfg.AddOption(constant.SectionQRCode, constant.OptSavePath, "",
		"Optional directory to save QR images (overrides GENERAL.directory)")

	appLogger.Debug("Registered configuration options", appLogger.LoggerInfo{
		ContextFunction: constant.CtxConfigure,
		Data: map[string]interface{}{
			constant.DataSection: constant.SectionQRCode,
		},
	})
}

// Startup checks the coherence of the configured options. A returned error
// aborts host startup.
func (p *Plugin) Startup(cfg Config) error {
	for _, state := range []string{"wait", "print"} {
		option := state + "_location"
		location := cfg.GetString(constant.SectionQRCode, option)
		if !placement.Valid(location) {
			appLogger.Error(constant.ErrUnknownLocation, appLogger.LoggerInfo{
				ContextFunction: constant.CtxStartup,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeUnknownLocation,
					Message: location,
					Type:    constant.ErrTypeValidation,
				},
				Data: map[string]interface{}{
					constant.DataState:    state,
					constant.DataLocation: location,
				},
			})
			return fmt.Errorf("unknown QR code location on %q state: %q", state, location)
		}
	}
	return nil
}

// hookError carries the error code and type of the failed internal step so the
// hook boundary can log distinct failure causes without aborting the host.
type hookError struct {
	code string
	kind string
	err  error
}

func (e *hookError) Error() string { return e.err.Error() }
func (e *hookError) Unwrap() error { return e.err }

func stepFailed(code, kind string, err error) *hookError {
	return &hookError{code: code, kind: kind, err: err}
}

// ProcessingDo generates the QR code for the current capture, stores it on the
// session and optionally saves it to disk. Every failure is logged and
// swallowed; the processing cycle continues without a usable QR image.
func (p *Plugin) ProcessingDo(cfg Config, app App) {
	ctx := appLogger.NewRequestContext()

	if err := p.process(cfg, app); err != nil {
		info := appLogger.LoggerInfo{
			ContextFunction: constant.CtxProcessing,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeGenerateFailure,
				Message: err.Error(),
				Type:    constant.ErrTypeGeneration,
			},
			Data: map[string]interface{}{
				constant.DataPicture: app.PictureFilename(),
				constant.DataCount:   app.Count(),
			},
		}
		var step *hookError
		if errors.As(err, &step) {
			info.Error.Code = step.code
			info.Error.Type = step.kind
		}
		appLogger.CtxError(ctx, constant.MsgProcessingFailed, info)
	}
}

func (p *Plugin) process(cfg Config, app App) error {
	if p.gen == nil {
		return stepFailed(constant.ErrCodeGeneratorMissing, constant.ErrTypeGeneration,
			errors.New(constant.ErrGeneratorMissing))
	}

	vars := map[string]string{
		constant.VarPicture: app.PictureFilename(),
		constant.VarCount:   strconv.Itoa(app.Count()),
		constant.VarURL:     app.PreviousPictureURL(),
	}
	text, err := expandTemplate(cfg.GetString(constant.SectionQRCode, constant.OptPrefixURL), vars)
	if err != nil {
		return stepFailed(constant.ErrCodeTemplateFormat, constant.ErrTypeValidation, err)
	}

	img, err := p.gen.Generate(text,
		cfg.GetColor(constant.SectionQRCode, constant.OptForeground),
		cfg.GetColor(constant.SectionQRCode, constant.OptBackground))
	if err != nil {
		return stepFailed(constant.ErrCodeGenerateFailure, constant.ErrTypeGeneration, err)
	}

	surface, err := qrcode.ToRGBA(img)
	if err != nil {
		return stepFailed(constant.ErrCodeConvertFailure, constant.ErrTypeConversion, err)
	}

	// Overwrite unconditionally, the display hooks always show the latest code
	app.QR().Image = surface

	appLogger.Debug(constant.MsgQRGenerated, appLogger.LoggerInfo{
		ContextFunction: constant.CtxProcessing,
		Data: map[string]interface{}{
			constant.DataText:  text,
			constant.DataCount: app.Count(),
		},
	})

	if !cfg.GetBool(constant.SectionQRCode, constant.OptSave) {
		return nil
	}
	return p.persist(cfg, app, img)
}

// persist writes the QR image into the resolved save directory and records the
// saved path in the host's picture metadata, best-effort.
func (p *Plugin) persist(cfg Config, app App, img image.Image) error {
	picture := app.PictureFilename()

	dir, err := storage.ResolveDirectory(
		cfg.GetString(constant.SectionQRCode, constant.OptSavePath),
		cfg.GetString(constant.SectionGeneral, constant.OptDirectory),
		picture)
	if err != nil {
		return stepFailed(constant.ErrCodeResolveDirectory, constant.ErrTypeStorage, err)
	}

	name := storage.DeriveFilename(picture, app.Count(),
		cfg.GetString(constant.SectionQRCode, constant.OptSuffix),
		cfg.GetString(constant.SectionQRCode, constant.OptExt))
	path := filepath.Join(dir, name)

	normalized := storage.Normalize(img, filepath.Ext(name))
	if err := p.saver.Save(normalized, path); err != nil {
		return stepFailed(constant.ErrCodeWriteFile, constant.ErrTypeStorage, err)
	}

	appLogger.Info(constant.MsgQRSaved, appLogger.LoggerInfo{
		ContextFunction: constant.CtxProcessing,
		Data: map[string]interface{}{
			constant.DataPath: path,
		},
	})

	// Metadata attach failures never disturb the main flow
	if store := app.Metadata(); store != nil && picture != "" {
		absPicture, pErr := filepath.Abs(picture)
		absPath, qErr := filepath.Abs(path)
		if pErr == nil && qErr == nil {
			_ = store.Attach(absPicture, constant.MetaQRCodePath, absPath)
		}
	}
	return nil
}

// WaitEnter displays the QR code on the wait view and caches the placement for
// the redraws that follow.
func (p *Plugin) WaitEnter(cfg Config, app App, win Window) {
	state := app.QR()
	if state == nil || state.Image == nil || !app.HasPreviousPicture() {
		return
	}

	winRect := win.Rect()
	location := cfg.GetString(constant.SectionQRCode, constant.OptWaitLocation)
	offset := cfg.GetPoint(constant.SectionQRCode, constant.OptOffset)

	state.WaitRect = placement.Place(winRect, state.Image.Bounds().Size(), location, offset)
	win.Surface().Blit(state.Image, state.WaitRect.Min)

	if sideText := cfg.GetString(constant.SectionQRCode, constant.OptSideText); sideText != "" && p.layout != nil {
		captionRect := placement.PlaceCaption(winRect, state.WaitRect, location, placement.DefaultMargin)
		state.Captions = p.layout(sideText,
			cfg.GetColor(constant.SectionWindow, constant.OptTextColor),
			captionRect, "bottom-left")
		for _, ts := range state.Captions {
			win.Surface().Blit(ts.Image, ts.Rect.Min)
		}
	}
}

// WaitDo redraws the QR code because the host may have painted over it, for
// instance after a print. The rectangle cached by WaitEnter is reused as-is.
func (p *Plugin) WaitDo(app App, win Window) {
	state := app.QR()
	if state == nil || state.Image == nil || !app.HasPreviousPicture() {
		return
	}

	win.Surface().Blit(state.Image, state.WaitRect.Min)
	for _, ts := range state.Captions {
		win.Surface().Blit(ts.Image, ts.Rect.Min)
	}
}

// PrintEnter displays the QR code on the print view. The rectangle is computed
// fresh every time since the print screen has its own location option.
func (p *Plugin) PrintEnter(cfg Config, app App, win Window) {
	state := app.QR()
	if state == nil || state.Image == nil {
		return
	}

	winRect := win.Rect()
	location := cfg.GetString(constant.SectionQRCode, constant.OptPrintLocation)
	offset := cfg.GetPoint(constant.SectionQRCode, constant.OptOffset)
	rect := placement.Place(winRect, state.Image.Bounds().Size(), location, offset)

	if sideText := cfg.GetString(constant.SectionQRCode, constant.OptSideText); sideText != "" && p.layout != nil {
		captionRect := placement.PlaceCaption(winRect, rect, location, placement.DefaultMargin)
		for _, ts := range p.layout(sideText,
			cfg.GetColor(constant.SectionWindow, constant.OptTextColor),
			captionRect, "bottom-left") {
			win.Surface().Blit(ts.Image, ts.Rect.Min)
		}
	}

	win.Surface().Blit(state.Image, rect.Min)
}
