package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/parafovea/fovea-sub006/internal/config"
	"github.com/parafovea/fovea-sub006/internal/engine"
	"github.com/parafovea/fovea-sub006/internal/export"
	"github.com/parafovea/fovea-sub006/internal/metrics"
	"github.com/parafovea/fovea-sub006/internal/storage"
	"github.com/parafovea/fovea-sub006/internal/track"
	"github.com/parafovea/fovea-sub006/internal/viz"
)

var (
	dataDir string
	preset  string
	outFile string
	inPlace bool
	// svg options
	svgWidth  int
	svgHeight int
	stroke    string
	boxEvery  int
	dots      bool
	// scrub options
	frameRate int
	// setkey fields
	setX float64
	setY float64
	setW float64
	setH float64
)

// main is the entry point for the fovea CLI; it registers commands and
// flags and executes the root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fovea",
		Short: "bounding box keyframe interpolation for video annotation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fovea", "data directory")

	interpCmd := &cobra.Command{
		Use:   "interp [track.yaml ...]",
		Short: "interpolate tracks and save the run",
		RunE:  runInterp,
	}
	interpCmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset track")

	queryCmd := &cobra.Command{
		Use:   "query [track.yaml] [frame]",
		Short: "evaluate the box at a single frame",
		Args:  cobra.ExactArgs(2),
		RunE:  runQuery,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run trajectories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [track.yaml]",
		Short: "render a track trajectory to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset track")
	svgCmd.Flags().StringVar(&outFile, "out", "track.svg", "output file")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 600, "svg height")
	svgCmd.Flags().StringVar(&stroke, "stroke", "#00ffcc", "stroke color")
	svgCmd.Flags().IntVar(&boxEvery, "box-every", 10, "box outline sampling interval (0 disables)")
	svgCmd.Flags().BoolVar(&dots, "dots", false, "render as braille dot raster instead of polyline")

	scrubCmd := &cobra.Command{
		Use:   "scrub [track.yaml]",
		Short: "interactive frame scrubber",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScrub,
	}
	scrubCmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset track")
	scrubCmd.Flags().IntVar(&frameRate, "fps", 0, "playback frame rate (default: track fps)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in preset tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				tf := config.GetPreset(name)
				fmt.Printf("  %-12s %d keyframes, %d segments\n", name, len(tf.Keyframes), len(tf.Segments))
			}
			return nil
		},
	}

	addKeyCmd := &cobra.Command{
		Use:   "addkey [track.yaml] [frame]",
		Short: "freeze the interpolated box at a frame into a keyframe",
		Args:  cobra.ExactArgs(2),
		RunE:  addKey,
	}
	addKeyCmd.Flags().StringVar(&outFile, "out", "", "output file (default: print to stdout)")
	addKeyCmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite the input file")

	removeKeyCmd := &cobra.Command{
		Use:   "removekey [track.yaml] [frame]",
		Short: "remove a keyframe and merge its segments",
		Args:  cobra.ExactArgs(2),
		RunE:  removeKey,
	}
	removeKeyCmd.Flags().StringVar(&outFile, "out", "", "output file (default: print to stdout)")
	removeKeyCmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite the input file")

	setKeyCmd := &cobra.Command{
		Use:   "setkey [track.yaml] [frame]",
		Short: "update fields of an existing keyframe",
		Args:  cobra.ExactArgs(2),
		RunE:  setKey,
	}
	setKeyCmd.Flags().Float64Var(&setX, "x", 0, "new x")
	setKeyCmd.Flags().Float64Var(&setY, "y", 0, "new y")
	setKeyCmd.Flags().Float64Var(&setW, "width", 0, "new width")
	setKeyCmd.Flags().Float64Var(&setH, "height", 0, "new height")
	setKeyCmd.Flags().StringVar(&outFile, "out", "", "output file (default: print to stdout)")
	setKeyCmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite the input file")

	rootCmd.AddCommand(interpCmd, queryCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, svgCmd, scrubCmd, presetsCmd, addKeyCmd, removeKeyCmd, setKeyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadTrack resolves a track from the --preset flag or a file path.
func loadTrack(args []string) (*config.TrackFile, string, error) {
	if preset != "" {
		tf := config.GetPreset(preset)
		if tf == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return tf, "", nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("a track file or --preset is required")
	}
	tf, err := config.Load(args[0])
	if err != nil {
		return nil, "", err
	}
	if len(tf.Keyframes) == 0 {
		return nil, "", fmt.Errorf("%w: %s", track.ErrNoKeyframes, args[0])
	}
	return tf, args[0], nil
}

func defaultMetrics() []track.Metric {
	return []track.Metric{metrics.NewPathLength(), metrics.NewCoverage(), metrics.NewMeanArea()}
}

func runInterp(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	var tracks []*config.TrackFile
	if preset != "" {
		tf := config.GetPreset(preset)
		if tf == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		tracks = append(tracks, tf)
	}
	for _, path := range args {
		tf, err := config.Load(path)
		if err != nil {
			return err
		}
		if len(tf.Keyframes) == 0 {
			return fmt.Errorf("%w: %s", track.ErrNoKeyframes, path)
		}
		tracks = append(tracks, tf)
	}
	if len(tracks) == 0 {
		return fmt.Errorf("a track file or --preset is required")
	}

	seqs := make([]track.Sequence, len(tracks))
	for i, tf := range tracks {
		seqs[i] = tf.ToSequence()
	}

	fmt.Printf("interpolating %d track(s)...\n", len(tracks))
	start := time.Now()

	allFrames, err := engine.MaterializeAll(context.Background(), seqs)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("completed in %v\n\n", elapsed)

	for i, tf := range tracks {
		frames := allFrames[i]
		seq := engine.Recount(seqs[i])

		values := make(map[string]float64)
		for _, m := range defaultMetrics() {
			for _, box := range frames {
				m.Observe(box)
			}
			values[m.Name()] = m.Value()
		}

		runID, err := st.Save(tf.Label, tf.FPS, seq.KeyframeCount, frames, values)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", tf.Label)
		fmt.Printf("  run id: %s\n", runID)
		fmt.Printf("  keyframes: %d  interpolated: %d  total: %d\n",
			seq.KeyframeCount, seq.InterpolatedFrameCount, seq.TotalFrames)
		for name, val := range values {
			fmt.Printf("  %s: %.6f\n", name, val)
		}
	}

	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	tf, _, err := loadTrack(args[:1])
	if err != nil {
		return err
	}
	frame, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid frame: %s", args[1])
	}

	seq := tf.ToSequence()
	if !seq.Visible(frame) {
		fmt.Printf("%s: hidden at frame %d\n", tf.Label, frame)
		return nil
	}

	box := engine.InterpolateAt(seq, frame)
	if box == nil {
		return fmt.Errorf("%w: frame %d", track.ErrFrameNotCovered, frame)
	}

	fmt.Printf("%s frame %d\n", tf.Label, frame)
	fmt.Printf("  x: %.3f  y: %.3f  width: %.3f  height: %.3f\n", box.X, box.Y, box.Width, box.Height)
	if box.IsKeyframe {
		fmt.Println("  keyframe")
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tFPS\tKEYFRAMES\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FPS,
			run.Keyframes,
			run.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("label: %s\n", meta.Label)
	fmt.Printf("frames: %d\n\n", len(frames))

	properties := []struct {
		caption string
		value   func(track.BoundingBox) float64
	}{
		{"x position", func(b track.BoundingBox) float64 { return b.X }},
		{"y position", func(b track.BoundingBox) float64 { return b.Y }},
		{"width", func(b track.BoundingBox) float64 { return b.Width }},
		{"height", func(b track.BoundingBox) float64 { return b.Height }},
	}

	for _, prop := range properties {
		data := make([]float64, len(frames))
		for i, box := range frames {
			data[i] = prop.value(box)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(prop.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"frame", "x", "y", "width", "height", "keyframe"}); err != nil {
		return err
	}

	for _, box := range frames {
		row := []string{
			strconv.Itoa(box.FrameNumber),
			strconv.FormatFloat(box.X, 'f', 6, 64),
			strconv.FormatFloat(box.Y, 'f', 6, 64),
			strconv.FormatFloat(box.Width, 'f', 6, 64),
			strconv.FormatFloat(box.Height, 'f', 6, 64),
			strconv.FormatBool(box.IsKeyframe),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, frames)
}

func renderSVG(cmd *cobra.Command, args []string) error {
	tf, _, err := loadTrack(args)
	if err != nil {
		return err
	}

	seq := tf.ToSequence()
	frames := engine.Interpolate(seq.Keyframes, seq.Segments, seq.Visibility)
	if len(frames) < 2 {
		return fmt.Errorf("track too short to render")
	}

	var svg string
	if dots {
		svg = export.CanvasToSVG(viz.TrajectoryCanvas(frames, 100, 40), 4)
	} else {
		svg = export.TrajectoryToSVG(frames, svgWidth, svgHeight, stroke, boxEvery)
	}

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", outFile, len(frames))
	return nil
}

func runScrub(cmd *cobra.Command, args []string) error {
	tf, _, err := loadTrack(args)
	if err != nil {
		return err
	}

	fps := frameRate
	if fps == 0 {
		fps = tf.FPS
	}
	return viz.RunScrub(tf.Label, tf.ToSequence(), fps)
}

// writeResult saves a modified track back to disk or prints it.
func writeResult(tf *config.TrackFile, seq track.Sequence, srcPath string) error {
	out := tf.FromSequence(seq)

	dest := outFile
	if inPlace {
		if srcPath == "" {
			return errors.New("--in-place requires a track file argument")
		}
		dest = srcPath
	}
	if dest == "" {
		data, err := config.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return config.Save(dest, out)
}

func addKey(cmd *cobra.Command, args []string) error {
	tf, srcPath, err := loadTrack(args[:1])
	if err != nil {
		return err
	}
	frame, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid frame: %s", args[1])
	}

	seq := engine.Recount(tf.ToSequence())
	updated := engine.AddKeyframe(seq, frame)
	if updated.KeyframeCount == seq.KeyframeCount {
		fmt.Printf("no change: frame %d is already a keyframe or outside the track\n", frame)
		return nil
	}

	fmt.Printf("added keyframe at frame %d (%d keyframes)\n", frame, updated.KeyframeCount)
	return writeResult(tf, updated, srcPath)
}

func removeKey(cmd *cobra.Command, args []string) error {
	tf, srcPath, err := loadTrack(args[:1])
	if err != nil {
		return err
	}
	frame, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid frame: %s", args[1])
	}

	seq := engine.Recount(tf.ToSequence())
	updated := engine.RemoveKeyframe(seq, frame)
	if updated.KeyframeCount == seq.KeyframeCount {
		fmt.Printf("no change: frame %d is not a removable keyframe\n", frame)
		return nil
	}

	fmt.Printf("removed keyframe at frame %d (%d keyframes)\n", frame, updated.KeyframeCount)
	return writeResult(tf, updated, srcPath)
}

func setKey(cmd *cobra.Command, args []string) error {
	tf, srcPath, err := loadTrack(args[:1])
	if err != nil {
		return err
	}
	frame, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid frame: %s", args[1])
	}

	fields := make(map[string]float64)
	if cmd.Flags().Changed("x") {
		fields[track.PropX] = setX
	}
	if cmd.Flags().Changed("y") {
		fields[track.PropY] = setY
	}
	if cmd.Flags().Changed("width") {
		fields[track.PropWidth] = setW
	}
	if cmd.Flags().Changed("height") {
		fields[track.PropHeight] = setH
	}
	if len(fields) == 0 {
		return errors.New("at least one of --x, --y, --width, --height is required")
	}

	seq := tf.ToSequence()
	if _, ok := seq.KeyframeAt(frame); !ok {
		fmt.Printf("no change: frame %d is not a keyframe\n", frame)
		return nil
	}

	updated := engine.UpdateKeyframe(seq, frame, fields)
	fmt.Printf("updated keyframe at frame %d\n", frame)
	return writeResult(tf, updated, srcPath)
}
