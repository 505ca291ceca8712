package cmd

import (
	"bytes"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Notice(scenesTable(scene.List()))
	return nil
}

func scenesTable(infos []scene.Info) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Scene", "Description"})
	table.SetAutoWrapText(false)
	for _, info := range infos {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	return "available scenes\n" + buf.String()
}
