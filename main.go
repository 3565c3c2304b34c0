package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dawnzzz/simple-bag/config"
	"github.com/dawnzzz/simple-bag/datastruct/bag"
	"github.com/dawnzzz/simple-bag/logger"
)

// 配置文件
var configFilename string
var defaultConfigFileName = "config.yaml"

func main() {
	flag.StringVar(&configFilename, "f", defaultConfigFileName, "the config file")
	flag.Parse()

	// 加载配置文件
	if err := config.SetupConfig(configFilename); err != nil {
		logger.Fatalf("setup config err, %v", err)
	}

	// 加载日志
	logger.SetupLogger()

	if err := run(os.Stdout); err != nil {
		logger.Error(err)
	}
}

func run(w io.Writer) error {
	cbag := bag.MakeCountingBag()
	cbag.Add(config.Properties.First)

	batch := make([]interface{}, 0, len(config.Properties.Batch))
	for _, item := range config.Properties.Batch {
		batch = append(batch, item)
	}
	cbag.AddMany(batch...)

	logger.Debugf("counting bag holds %d items", cbag.Size())

	if _, err := fmt.Fprintln(w, cbag.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "=> has %d items.\n", cbag.Size())

	return err
}
