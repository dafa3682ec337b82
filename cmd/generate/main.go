// Command generate writes a random measurements file.
package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"

	"github.com/bytedance/gopkg/lang/fastrand"

	"onebrc/internal/fixedpoint"
)

type station struct {
	name string
	mean int64 // tenths
}

var stations = []station{
	{"Abha", 180}, {"Accra", 264}, {"Addis Ababa", 160}, {"Adelaide", 173},
	{"Alexandria", 200}, {"Anchorage", 28}, {"Baghdad", 228}, {"Bangkok", 286},
	{"Beijing", 129}, {"Bergen", 77}, {"Bulawayo", 189}, {"Cairo", 214},
	{"Cape Town", 162}, {"Chihuahua", 186}, {"Dakar", 240}, {"Dodoma", 227},
	{"Dushanbe", 147}, {"Erzurum", 51}, {"Hamburg", 97}, {"Hà Nội", 236},
	{"Honiara", 265}, {"İzmir", 179}, {"Kyiv", 84}, {"La Paz", 237},
	{"Lhasa", 76}, {"Lima", 180}, {"N'Djamena", 283}, {"Nuuk", -26},
	{"Oslo", 57}, {"Petropavlovsk-Kamchatsky", 19}, {"Reykjavík", 43},
	{"St. John's", 50}, {"Tromsø", 29}, {"Ürümqi", 74}, {"Yakutsk", -88},
	{"Zürich", 93},
}

// spread is the maximum distance from a station's mean, in tenths.
const spread = 150

func main() {
	rows := flag.Int("rows", 1_000_000, "number of records to write")
	out := flag.String("out", "measurements.txt", "output file")
	count := flag.Int("stations", len(stations), "number of distinct stations to use")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *count < 1 || *count > len(stations) {
		log.Error("invalid station count", "stations", *count, "max", len(stations))
		os.Exit(2)
	}

	if err := generate(*out, *rows, stations[:*count]); err != nil {
		log.Error("generate failed", "out", *out, "err", err)
		os.Exit(1)
	}
	log.Info("generated", "out", *out, "rows", *rows)
}

func generate(path string, rows int, set []station) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	line := make([]byte, 0, 64)
	for i := 0; i < rows; i++ {
		s := set[fastrand.Intn(len(set))]
		v := s.mean + int64(fastrand.Intn(2*spread+1)) - spread
		v = min(max(v, -999), 999)

		line = append(line[:0], s.name...)
		line = append(line, ';')
		line = fixedpoint.AppendTenths(line, v)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
