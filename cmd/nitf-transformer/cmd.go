// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const version = "1.0.0"

var commands = cli.Commands{
	cli.Command{
		Name:      "transform",
		Aliases:   []string{"t"},
		Usage:     "Transform decoded NITF segment documents into catalog records",
		ArgsUsage: "FILE [FILE...]",
		Action:    transformAction,
		Flags: []cli.Flag{
			cli.StringFlag{Name: "format, f", Usage: "document format (json or yaml); guessed from the file extension when empty"},
			cli.BoolFlag{Name: "geojson, g", Usage: "print GeoJSON features instead of attribute maps"},
			cli.BoolFlag{Name: "derived-title, d", Usage: "include the name of the derived image"},
			cli.StringFlag{Name: "qualifier, q", Usage: "qualifier of the derived image name", EnvVar: "NITF_DERIVED_QUALIFIER"},
		},
	},
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the nitf-transformer webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the transformer CLI",
		Action:  versionAction,
	},
}

func versionAction(c *cli.Context) {
	fmt.Fprintln(c.App.Writer, c.App.Version)
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "nitf-transformer"
	app.Usage = "Map decoded NITF segments onto catalog metadata records"
	app.Version = version
	app.Commands = commands
	return
}
