package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// DetectCommand returns the detect command.
func DetectCommand() *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "Show static, dynamic and effective capabilities",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "Print only the effective mask as hex",
			},
		},
		Action: detect,
	}
}

func detect(c *cli.Context) error {
	snap := resolve(c)

	if c.Bool("hex") {
		_, err := fmt.Fprintln(writer(c), snap.Effective.Hex())
		return err
	}
	return render(c, snap)
}
