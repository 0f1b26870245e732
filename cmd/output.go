package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/liamg/sonar/scan"
)

type printer struct {
	w        io.Writer
	protocol scan.Protocol
	services bool
	openOnly bool
	colour   bool
}

var stateColours = map[scan.PortState]*color.Color{
	scan.PortOpen:         color.New(color.FgGreen, color.Bold),
	scan.PortClosed:       color.New(color.FgRed),
	scan.PortOpenFiltered: color.New(color.FgYellow),
	scan.PortUnreachable:  color.New(color.FgHiBlack),
}

func (p *printer) print(result scan.Result) {
	if p.openOnly && !result.IsOpen() {
		return
	}
	fmt.Fprintln(p.w, p.format(result))
}

func (p *printer) format(result scan.Result) string {
	description := result.Status.Description()
	if c, ok := stateColours[result.Status.State]; ok && p.colour {
		description = c.Sprint(description)
	}

	line := fmt.Sprintf("Port: %d is %s", result.Port, description)

	if p.services {
		if service := scan.DescribePort(p.protocol, result.Port); service != "" {
			line = fmt.Sprintf("%s (%s)", line, service)
		}
	}
	return line
}
