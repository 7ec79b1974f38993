//go:build js && wasm

// Package main exposes the clip planning core to a browser host via
// syscall/js. Every exported function is a thin adapter around the same pure
// planning code the CLI uses, so a plan produced in the browser is
// byte-identical to one produced natively for the same request.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o cliphound.wasm ./wasm
//
// The host script loads the module alongside an FFmpeg.wasm build and hands
// the planned argument vector to it unchanged.
package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/torre76/cliphound/clip"
)

// failure wraps an error message in the {error: "..."} shape the host
// checks for.
func failure(err error) js.Value {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

// success wraps a result value in the {value: ...} shape.
func success(value interface{}) js.Value {
	return js.ValueOf(map[string]interface{}{"value": value})
}

// seconds converts a duration to the float seconds representation used on
// the JavaScript side.
func seconds(d time.Duration) float64 {
	return d.Seconds()
}

// parseTime(text) -> {value: seconds} | {error}
func parseTime(_ js.Value, args []js.Value) interface{} {
	d, err := clip.ParseTime(args[0].String())
	if err != nil {
		return failure(err)
	}
	return success(seconds(d))
}

// formatTimeReadable(seconds) -> "MM:SS" | "HH:MM:SS"
func formatTimeReadable(_ js.Value, args []js.Value) interface{} {
	d := time.Duration(args[0].Float() * float64(time.Second))
	return js.ValueOf(clip.FormatTimeReadable(d))
}

// validateRange(startSeconds, endSeconds) -> {value: clipDurationSeconds} | {error}
func validateRange(_ js.Value, args []js.Value) interface{} {
	start := time.Duration(args[0].Float() * float64(time.Second))
	end := time.Duration(args[1].Float() * float64(time.Second))
	r, err := clip.ValidateRange(start, end)
	if err != nil {
		return failure(err)
	}
	return success(seconds(r.ClipDuration))
}

// generateOutputName(inputName, startText, endText) -> {value: name} | {error}
func generateOutputName(_ js.Value, args []js.Value) interface{} {
	start, err := clip.ParseTime(args[1].String())
	if err != nil {
		return failure(err)
	}
	end, err := clip.ParseTime(args[2].String())
	if err != nil {
		return failure(err)
	}
	r, err := clip.ValidateRange(start, end)
	if err != nil {
		return failure(err)
	}
	return success(clip.OutputName(args[0].String(), r))
}

// planClip({input_file, start_time, end_time}, outputDir?) -> {value: plan} | {error}
// The returned plan mirrors the ClipPlan JSON shape: output path, resolved
// range, the discrete argument vector, and a display command string.
func planClip(_ js.Value, args []js.Value) interface{} {
	req := clip.ClipRequest{
		InputFile: args[0].Get("input_file").String(),
		StartTime: args[0].Get("start_time").String(),
		EndTime:   args[0].Get("end_time").String(),
	}

	planner := &clip.Planner{}
	if len(args) > 1 && args[1].Type() == js.TypeString {
		planner.OutputDir = args[1].String()
	}

	plan, err := planner.Plan(req)
	if err != nil {
		return failure(err)
	}

	// Round-trip through JSON so nested structs become plain JS objects.
	data, err := json.Marshal(plan)
	if err != nil {
		return failure(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return failure(err)
	}
	return success(decoded)
}

func main() {
	bindings := map[string]interface{}{
		"parseTime":          js.FuncOf(parseTime),
		"formatTimeReadable": js.FuncOf(formatTimeReadable),
		"validateRange":      js.FuncOf(validateRange),
		"generateOutputName": js.FuncOf(generateOutputName),
		"planClip":           js.FuncOf(planClip),
	}

	// Individually callable functions plus a bundling object, so hosts can
	// pick either style.
	global := js.Global()
	for name, fn := range bindings {
		global.Set(name, fn)
	}
	global.Set("cliphound", js.ValueOf(bindings))

	// Keep the module alive for the host.
	select {}
}
