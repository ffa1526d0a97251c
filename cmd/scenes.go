package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes prints the registered scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Group", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.Group, info.Description})
	}
	table.Render()

	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}
