package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arvilehto/keyshift"
	"github.com/arvilehto/keyshift/midifile"
	"github.com/arvilehto/keyshift/oto"
	"github.com/arvilehto/keyshift/synth"
	"github.com/arvilehto/keyshift/version"
)

func main() {
	fromFlag := flag.String("from", "", "Source key as Tonic:mode, e.g. C:major. Overrides the key of a sheet file.")
	toFlag := flag.String("to", "", "Target key as Tonic:mode, e.g. A:harmonicMinor. Overrides the key of a sheet file.")
	notes := flag.String("n", "", "Transpose an inline melody of note tokens (e.g. \"C4 E4 G4\") instead of reading files.")
	play := flag.Bool("p", false, "Play the transposed melodies.")
	wavOut := flag.Bool("w", false, "Output the transposed melody as a .wav preview.")
	midOut := flag.Bool("m", false, "Output the transposed melody as a .mid file.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting .wav.")
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the same directory where the original melody file is.")
	bpm := flag.Int("bpm", 120, "Tempo of .wav/.mid output and playback, one note per beat.")
	trace := flag.Bool("d", false, "Print the per-note transposition decisions to standard error.")
	versionFlag := flag.Bool("v", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if (flag.NArg() == 0 && *notes == "") || *help {
		flag.Usage()
		os.Exit(0)
	}
	var audioContext keyshift.AudioContext
	if *play {
		var err error
		audioContext, err = oto.NewContext()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not acquire oto AudioContext: %v\n", err)
			os.Exit(1)
		}
	}
	flagKeys := func() (from, to keyshift.Key, err error) {
		if *fromFlag == "" || *toFlag == "" {
			return keyshift.Key{}, keyshift.Key{}, fmt.Errorf("both -from and -to keys are required for this input")
		}
		if from, err = keyshift.ParseKey(*fromFlag); err != nil {
			return keyshift.Key{}, keyshift.Key{}, fmt.Errorf("-from: %w", err)
		}
		if to, err = keyshift.ParseKey(*toFlag); err != nil {
			return keyshift.Key{}, keyshift.Key{}, fmt.Errorf("-to: %w", err)
		}
		return from, to, nil
	}
	process := func(filename string, melody keyshift.Melody, fromKey, toKey keyshift.Key) error {
		output := func(extension string, contents []byte) error {
			if *stdout {
				os.Stdout.Write(contents)
				return nil
			}
			_, name := filepath.Split(filename)
			dir := *directory
			if dir == "" {
				dir = filepath.Dir(filename)
			}
			name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
			f := filepath.Join(dir, name)
			if dir != "" {
				if err := os.MkdirAll(dir, os.ModePerm); err != nil {
					return fmt.Errorf("could not create output directory %v: %v", dir, err)
				}
			}
			if err := os.WriteFile(f, contents, 0644); err != nil {
				return fmt.Errorf("could not write file %v: %v", f, err)
			}
			return nil
		}
		transposed, traces, err := keyshift.TransposeTraced(melody, fromKey, toKey)
		if err != nil {
			return fmt.Errorf("transposing %v -> %v failed: %w", fromKey, toKey, err)
		}
		if *trace {
			for _, tr := range traces {
				if tr.Diatonic {
					fmt.Fprintf(os.Stderr, "%3v pc %2v degree %v -> %3v\n", tr.Input, tr.PitchClass, tr.Degree, tr.Result)
				} else {
					fmt.Fprintf(os.Stderr, "%3v pc %2v chromatic +%v -> %3v\n", tr.Input, tr.PitchClass, tr.Shift, tr.Result)
				}
			}
		}
		names, err := transposed.Render()
		if err != nil {
			return fmt.Errorf("rendering note names failed: %w", err)
		}
		if !*wavOut && !*midOut {
			fmt.Println(strings.Join(names, " "))
		}
		if *midOut {
			var buf bytes.Buffer
			if err := midifile.Write(&buf, transposed, *bpm); err != nil {
				return fmt.Errorf("could not generate .mid file: %w", err)
			}
			if err := output(".mid", buf.Bytes()); err != nil {
				return fmt.Errorf("error outputting .mid file: %w", err)
			}
		}
		if *wavOut || *play {
			buffer, err := synth.Render(transposed, *bpm)
			if err != nil {
				return fmt.Errorf("could not render audio: %w", err)
			}
			if *wavOut {
				wav, err := keyshift.Wav(buffer, *pcm)
				if err != nil {
					return fmt.Errorf("could not generate .wav file: %w", err)
				}
				if err := output(".wav", wav); err != nil {
					return fmt.Errorf("error outputting .wav file: %w", err)
				}
			}
			if *play {
				sink := audioContext.Output()
				defer sink.Close()
				if err := sink.WriteAudio(buffer); err != nil {
					return fmt.Errorf("playback failed: %w", err)
				}
			}
		}
		return nil
	}
	processFile := func(filename string) error {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".mid", ".midi":
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("could not open file %v: %v", filename, err)
			}
			defer f.Close()
			melody, err := midifile.Read(f)
			if err != nil {
				return fmt.Errorf("could not read melody from %v: %w", filename, err)
			}
			fromKey, toKey, err := flagKeys()
			if err != nil {
				return err
			}
			return process(filename, melody, fromKey, toKey)
		case ".yml", ".yaml", ".json":
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("could not read file %v: %v", filename, err)
			}
			sheet, err := keyshift.ParseSheet(data)
			if err != nil {
				return err
			}
			melody, err := sheet.Melody()
			if err != nil {
				return err
			}
			fromKey, toKey, err := sheetKeys(sheet, *fromFlag, *toFlag)
			if err != nil {
				return err
			}
			return process(filename, melody, fromKey, toKey)
		default: // plain text note tokens
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("could not read file %v: %v", filename, err)
			}
			melody, err := keyshift.ParseMelodyText(string(data))
			if err != nil {
				return err
			}
			fromKey, toKey, err := flagKeys()
			if err != nil {
				return err
			}
			return process(filename, melody, fromKey, toKey)
		}
	}
	retval := 0
	if *notes != "" {
		melody, err := keyshift.ParseMelodyText(*notes)
		if err == nil {
			var fromKey, toKey keyshift.Key
			fromKey, toKey, err = flagKeys()
			if err == nil {
				err = process("melody", melody, fromKey, toKey)
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not process inline melody: %v\n", err)
			retval = 1
		}
	}
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			var files []string
			for _, pattern := range []string{"*.yml", "*.yaml", "*.json", "*.txt", "*.mid"} {
				matches, err := filepath.Glob(filepath.Join(param, pattern))
				if err != nil {
					fmt.Fprintf(os.Stderr, "could not glob the path %v: %v\n", param, err)
					retval = 1
					continue
				}
				files = append(files, matches...)
			}
			for _, file := range files {
				if err := processFile(file); err != nil {
					fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			if err := processFile(param); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	os.Exit(retval)
}

// sheetKeys resolves the keys of a sheet, letting the -from/-to flags
// override what the document says.
func sheetKeys(sheet keyshift.Sheet, fromFlag, toFlag string) (from, to keyshift.Key, err error) {
	if fromFlag != "" {
		from, err = keyshift.ParseKey(fromFlag)
	} else {
		from, err = sheet.From.Key()
	}
	if err != nil {
		return keyshift.Key{}, keyshift.Key{}, fmt.Errorf("source key: %w", err)
	}
	if toFlag != "" {
		to, err = keyshift.ParseKey(toFlag)
	} else {
		to, err = sheet.To.Key()
	}
	if err != nil {
		return keyshift.Key{}, keyshift.Key{}, fmt.Errorf("target key: %w", err)
	}
	return from, to, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Keyshift command line utility for transposing melodies between keys.\nUsage: %s [flags] [path ...]\nPaths may be sheet files (.yml/.json), note token lists (.txt) or MIDI files (.mid).\n", os.Args[0])
	flag.PrintDefaults()
}
