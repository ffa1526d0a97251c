package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/df07/go-pathtracer/pkg/upload"
)

// RenderFlags are the options of the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "scene to render, see the scenes command",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width, the scene's aspect ratio sets the height",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel, must be a perfect square",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum number of bounces",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "random seed for sampling and procedural scenes",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "rows rendered concurrently, 0 uses one per CPU",
	},
	cli.StringFlag{
		Name:  "texture",
		Usage: "image file for textured scenes",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "render.png",
		Usage: "image filename, the extension selects the format",
	},
	cli.StringFlag{
		Name:  "ppm",
		Usage: "also stream the image as plain PPM to this file",
	},
	cli.UintFlag{
		Name:  "thumbnail",
		Usage: "also save a thumbnail of this width next to the image",
	},
	cli.StringFlag{
		Name:  "s3-bucket",
		Usage: "upload the image to this S3 bucket",
	},
	cli.StringFlag{
		Name:  "s3-prefix",
		Value: "renders",
		Usage: "key prefix for uploaded images",
	},
	cli.StringFlag{
		Name:  "s3-region",
		Usage: "region of the S3 bucket",
	},
	cli.StringFlag{
		Name:  "s3-endpoint",
		Usage: "endpoint of an S3 compatible store",
	},
}

// teeWriter forwards every row to each of its writers
type teeWriter []renderer.PixelWriter

func (t teeWriter) WriteRow(y int, pixels []core.Vec3) error {
	for _, w := range t {
		if err := w.WriteRow(y, pixels); err != nil {
			return err
		}
	}
	return nil
}

// RenderScene renders a scene to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 0 {
		return errors.New("render takes no arguments, select a scene with --scene")
	}

	sc, err := scene.Create(ctx.String("scene"), scene.Options{
		Seed:        ctx.Int64("seed"),
		TexturePath: ctx.String("texture"),
	})
	if err != nil {
		return err
	}
	applyOverrides(ctx, sc)

	rt, err := sc.NewRaytracer()
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(sc.Camera)
	fb := imageio.NewFramebuffer(camera.Width, camera.Height)
	out := teeWriter{fb}

	if path := ctx.String("ppm"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("while creating %s: %w", path, err)
		}
		defer f.Close()

		ppm := imageio.NewPPMWriter(f, camera.Width, camera.Height)
		defer func() {
			if err := ppm.Flush(); err != nil {
				logger.Errorf("while flushing %s: %v", path, err)
			}
		}()
		out = append(out, ppm)
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	logger.Noticef("rendering scene %s (%d shapes)", sc.Name, sc.ShapeCount())
	stats, err := rt.Render(renderCtx, out)
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	img := fb.Image()
	logger.Infof("average luminance %.3f", imageio.AverageLuminance(img))

	outPath := ctx.String("out")
	if err := imageio.Save(img, outPath); err != nil {
		return err
	}
	logger.Noticef("saved %s", outPath)

	if width := ctx.Uint("thumbnail"); width > 0 {
		thumbPath := thumbnailPath(outPath)
		if err := imageio.Save(imageio.Thumbnail(img, width), thumbPath); err != nil {
			return err
		}
		logger.Noticef("saved %s", thumbPath)
	}

	if bucket := ctx.String("s3-bucket"); bucket != "" {
		return uploadImage(ctx, sc.Name, outPath, start)
	}

	return nil
}

// applyOverrides replaces the scene's recommended settings with any flags given
func applyOverrides(ctx *cli.Context, sc *scene.Scene) {
	if ctx.IsSet("width") {
		sc.Camera.Width = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		sc.Sampling.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		sc.Sampling.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("seed") {
		sc.Sampling.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("workers") {
		sc.Sampling.NumWorkers = ctx.Int("workers")
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	renderer.WriteStatsTable(&buf, stats)
	logger.Noticef("render statistics\n%s", buf.String())
}

// thumbnailPath inserts a _thumb suffix before the extension
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}

func uploadImage(ctx *cli.Context, sceneName, path string, start time.Time) error {
	uploader, err := upload.NewS3UploaderFromConfig(upload.Config{
		Bucket:   ctx.String("s3-bucket"),
		Prefix:   ctx.String("s3-prefix"),
		Region:   ctx.String("s3-region"),
		Endpoint: ctx.String("s3-endpoint"),
	})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("while reading %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	_, err = uploader.Upload(context.Background(), upload.RenderKey(sceneName, start, ext), upload.ContentType(ext), data)
	return err
}
