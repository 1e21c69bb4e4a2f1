package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	scenebridge "github.com/wippyai/scene-bridge"
	"github.com/wippyai/scene-bridge/importer"
	"github.com/wippyai/scene-bridge/memscene"
	"github.com/wippyai/scene-bridge/native"
	"github.com/wippyai/scene-bridge/scene"
	"github.com/wippyai/scene-bridge/wasmlib"
)

func main() {
	var (
		file        = flag.String("file", "", "Scene file to import (defaults to the built-in demo scene)")
		wasmFile    = flag.String("wasm", "", "Path to a wasm importer shim (uses the in-process library if empty)")
		triangulate = flag.Bool("triangulate", false, "Run the triangulate post-process step")
		join        = flag.Bool("join", false, "Run the join-identical-vertices post-process step")
		validate    = flag.Bool("validate", false, "Run the validate-data-structure post-process step")
		interactive = flag.Bool("i", false, "Interactive node browser")
		verbose     = flag.Bool("v", false, "Verbose import logging")
	)
	flag.Parse()

	if err := run(*file, *wasmFile, postFlags(*triangulate, *join, *validate), *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func postFlags(triangulate, join, validate bool) scenebridge.PostProcess {
	var flags scenebridge.PostProcess
	if triangulate {
		flags |= scenebridge.Triangulate
	}
	if join {
		flags |= scenebridge.JoinIdenticalVertices
	}
	if validate {
		flags |= scenebridge.ValidateDataStructure
	}
	return flags
}

func run(file, wasmFile string, flags scenebridge.PostProcess, interactive, verbose bool) error {
	ctx := context.Background()

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		importer.SetLogger(logger)
		memscene.SetLogger(logger)
		wasmlib.SetLogger(logger)
	}

	var lib scenebridge.Library
	if wasmFile != "" {
		wlib, err := wasmlib.OpenFile(ctx, wasmFile)
		if err != nil {
			return err
		}
		defer wlib.Close(ctx)
		lib = wlib
		if file == "" {
			return fmt.Errorf("-wasm requires -file")
		}
	} else {
		lib = demoLibrary()
		if file == "" {
			file = demoScenePath
		}
	}

	imp := importer.New(lib, importer.WithPostProcess(flags))
	sc, err := imp.ImportFile(file)
	if err != nil {
		return err
	}
	defer sc.Close()

	if interactive {
		return runInteractive(sc, file)
	}
	printSummary(os.Stdout, sc, file)
	return nil
}

const demoScenePath = "demo.scene"

// demoLibrary registers a small fixture so the tool works out of the box
// without a wasm importer build.
func demoLibrary() *memscene.Library {
	lib := memscene.New()
	lib.RegisterFile(demoScenePath, memscene.NewBuilder().
		AddMesh("hull", 2048, 4092, 0).
		AddMesh("antenna", 256, 508, 1).
		AddMesh("dish", 512, 1020, 1).
		AddMaterial(7).
		AddMaterial(3).
		AddAnimation("spin", 120, 24, 1).
		AddTexture(0, 0, "png").
		AddLight("sun", native.LightSourceDirectional,
			native.AiVector3D{X: 10, Y: 50, Z: 10},
			native.AiColor3D{R: 1, G: 0.96, B: 0.9}).
		AddCamera("main", 0.9, 0.1, 1000).
		Root(&memscene.NodeSpec{
			Name: "ROOT",
			Children: []*memscene.NodeSpec{
				{Name: "hull", MeshIndices: []uint32{0}, Children: []*memscene.NodeSpec{
					{Name: "antenna", MeshIndices: []uint32{1}},
					{Name: "dish", MeshIndices: []uint32{2}},
				}},
				{Name: "sun"},
				{Name: "main"},
			},
		}))
	return lib
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD780"))
)

func printSummary(w *os.File, sc *scene.Scene, file string) {
	styled := term.IsTerminal(int(w.Fd()))
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	fmt.Fprintln(w, render(headerStyle, "Scene: "+file))
	fmt.Fprintln(w)

	counts := []struct {
		label string
		n     uint32
	}{
		{"meshes", sc.NumMeshes()},
		{"materials", sc.NumMaterials()},
		{"animations", sc.NumAnimations()},
		{"textures", sc.NumTextures()},
		{"lights", sc.NumLights()},
		{"cameras", sc.NumCameras()},
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s %s\n",
			render(labelStyle, fmt.Sprintf("%-11s", c.label)),
			render(countStyle, fmt.Sprintf("%d", c.n)))
	}

	if flags := sceneFlagNames(sc); len(flags) > 0 {
		fmt.Fprintf(w, "  %s %s\n",
			render(labelStyle, fmt.Sprintf("%-11s", "flags")),
			render(flagStyle, strings.Join(flags, ", ")))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, render(headerStyle, "Node hierarchy"))
	printNode(w, sc.RootNode(), 1)
}

func printNode(w *os.File, n scene.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	line := indent + n.Name()
	if idx := n.MeshIndices(); len(idx) > 0 {
		line += fmt.Sprintf("  (meshes %v)", idx)
	}
	fmt.Fprintln(w, line)
	for _, c := range n.Children() {
		printNode(w, c, depth+1)
	}
}

func sceneFlagNames(sc *scene.Scene) []string {
	var names []string
	if sc.IsIncomplete() {
		names = append(names, "incomplete")
	}
	if sc.IsValidated() {
		names = append(names, "validated")
	}
	if sc.HasValidationWarning() {
		names = append(names, "validation-warning")
	}
	if sc.IsNonVerboseFormat() {
		names = append(names, "non-verbose-format")
	}
	if sc.IsTerrain() {
		names = append(names, "terrain")
	}
	return names
}
