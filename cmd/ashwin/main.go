// Copyright (c) 2025 Cubyte.online under the AGPL License
// Copyright (c) 2022 Cogent Core. under the BSD-style License
// Copyright (c) 2017 Maxim Kupriianov <max@kc.vc>, under the MIT License

// Command ashwin lists the Vulkan instance extensions each windowing system
// needs for a surface and probes surface creation on a real window.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/tomas-mraz/vulkan"
	ashwin "github.com/tomas-mraz/vulkan-ash-window"
	"github.com/tomas-mraz/vulkan-ash-window/glfwwin"
)

func init() {
	// GLFW and AppKit calls must stay on the main thread.
	runtime.LockOSThread()
}

// Config is the configuration of the ashwin tool.
type Config struct {

	// Platform is the surface variant to list extensions for, such as
	// xlib, wayland or macos. All variants reachable on this system are
	// listed when it is empty.
	Platform string `posarg:"0" required:"-"`

	// Transport is the X11 transport, xlib or xcb.
	Transport string `flag:"t,transport" default:"xlib"`

	// AppName is the application name given to the probe instance.
	AppName string `flag:"n,name" default:"ashwin probe"`

	// Layers are instance layers enabled by the probe when available.
	Layers []string `flag:"l,layer"`

	// Verbose logs surface creation steps.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("ashwin", "Ashwin lists the Vulkan surface extensions of each windowing system and probes surface creation.")
	cli.Run(opts, &Config{}, Extensions, Probe)
}

func setup(c *Config) (ashwin.X11Transport, error) {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	ashwin.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return ashwin.ParseX11Transport(c.Transport)
}

// Extensions prints the instance extensions needed by a surface variant,
// or by every variant reachable on this system.
func Extensions(c *Config) error { //cli:cmd -root
	transport, err := setup(c)
	if err != nil {
		return err
	}
	variants := ashwin.CurrentTarget().Variants()
	if c.Platform != "" {
		v, ok := ashwin.ParseVariant(c.Platform)
		if !ok {
			return fmt.Errorf("%w: %q", ashwin.ErrUnsupportedVariant, c.Platform)
		}
		variants = []ashwin.Variant{v}
	}
	for _, v := range variants {
		if c.Platform == "" && x11Variant(v) && v != x11Variants[transport] {
			continue
		}
		ext := v.Extensions()
		fmt.Printf("%-8s %s %s\n", v, ext[0], ext[1])
	}
	return nil
}

var x11Variants = map[ashwin.X11Transport]ashwin.Variant{
	ashwin.TransportXlib: ashwin.VariantXlib,
	ashwin.TransportXcb:  ashwin.VariantXcb,
}

func x11Variant(v ashwin.Variant) bool {
	return v == ashwin.VariantXlib || v == ashwin.VariantXcb
}

// Probe opens a window with GLFW, creates an instance with the extensions
// the window needs, creates a surface on it and destroys both again.
func Probe(c *Config) error {
	transport, err := setup(c)
	if err != nil {
		return err
	}
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	defer glfw.Terminate()
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return errors.Log(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := glfw.CreateWindow(320, 240, c.AppName, nil, nil)
	if err != nil {
		return errors.Log(err)
	}
	defer window.Destroy()

	opts := []ashwin.Option{ashwin.WithX11Transport(transport)}
	h, err := glfwwin.Handle(window)
	if err != nil {
		return errors.Log(err)
	}
	v, err := ashwin.Classify(h, opts...)
	if err != nil {
		return errors.Log(err)
	}
	instance, err := ashwin.NewInstance(ashwin.InstanceConfig{
		AppName: c.AppName,
		Layers:  c.Layers,
		Debug:   c.Verbose,
	}, h, opts...)
	if err != nil {
		return errors.Log(err)
	}
	defer vk.DestroyInstance(instance, nil)
	if c.Verbose && debugReportAvailable() {
		report, err := ashwin.NewDebugReport(instance)
		if err != nil {
			return errors.Log(err)
		}
		defer report.Destroy()
	}

	entry, err := glfwwin.NewEntry()
	if err != nil {
		return errors.Log(err)
	}
	surface, err := ashwin.CreateSurface(entry, instance, h, nil, opts...)
	if err != nil {
		return errors.Log(err)
	}
	vk.DestroySurface(instance, surface, nil)
	ext := v.Extensions()
	fmt.Printf("%s surface created on %s window (%s %s)\n", v, h.System(), ext[0], ext[1])
	return nil
}

func debugReportAvailable() bool {
	available, err := ashwin.AvailableInstanceExtensions()
	if err != nil {
		return false
	}
	return len(ashwin.MissingExtensions(available, ashwin.ExtDebugReportExtensionName)) == 0
}
