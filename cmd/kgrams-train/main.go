package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"

	"github.com/golang/glog"
	"github.com/kho/easy"

	"github.com/vgherard/kgrams"
)

func main() {
	var args struct {
		Corpus string `name:"corpus" usage:"path to training corpus, one sentence per line"`
	}
	n := flag.Int("n", 3, "model order")
	smoother := flag.String("smoother", "kn", "smoother: ml, addk, sbo, abs, wb, kn, mkn")
	k := flag.Float64("k", 1.0, "Add-k constant")
	lambda := flag.Float64("lambda", 0.4, "Stupid Backoff penalization")
	d := flag.Float64("d", 0.75, "discount (Absolute Discount / Kneser-Ney)")
	d1 := flag.Float64("d1", 0.5, "Modified Kneser-Ney discount for count 1")
	d2 := flag.Float64("d2", 1.0, "Modified Kneser-Ney discount for count 2")
	d3 := flag.Float64("d3", 1.0, "Modified Kneser-Ney discount for count 3+")
	samples := flag.Int("samples", 10, "number of sentences to sample")
	temperature := flag.Float64("temperature", 1.0, "sampling temperature")
	maxLength := flag.Int("max_length", 30, "maximum sampled sentence length")
	lower := flag.Bool("lower", false, "lower-case the corpus before counting")
	seed := flag.Int64("seed", 1, "sampling RNG seed")
	easy.ParseFlagsAndArgs(&args)

	sentences, err := loadCorpus(args.Corpus, *lower)
	if err != nil {
		glog.Fatalf("loading corpus: %v", err)
	}

	var freqs *kgrams.KgramFreqs
	elapsed := easy.Timed(func() {
		freqs = kgrams.NewKgramFreqs(*n)
		freqs.ProcessSentences(sentences, false)
	})
	glog.Infof("ingested %d sentences (%d words), vocabulary size %d, in %v",
		len(sentences), freqs.TotWords(), freqs.V(), elapsed)

	s, err := fitSmoother(freqs, *n, *smoother, *k, *lambda, *d, *d1, *d2, *d3)
	if err != nil {
		glog.Fatalf("fitting smoother: %v", err)
	}

	sampler := kgrams.NewSampler[kgrams.Smoother](s, rand.New(rand.NewSource(*seed)))
	for i := 0; i < *samples; i++ {
		fmt.Println(sampler.SampleSentence(*maxLength, *temperature))
	}
}

// loadCorpus reads path one sentence per line, passing each line through
// a Preprocessor with the default erase pattern that also lower-cases it
// iff lower is set. Lines left empty are skipped.
func loadCorpus(path string, lower bool) ([]string, error) {
	in, err := easy.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	pre := kgrams.NewPreprocessor(nil, lower)
	var sentences []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := pre.Process(scanner.Text())
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}

// fitSmoother builds the requested smoother over freqs. Only the
// parameters relevant to the chosen smoother are used.
func fitSmoother(freqs *kgrams.KgramFreqs, n int, name string, k, lambda, d, d1, d2, d3 float64) (kgrams.Smoother, error) {
	switch name {
	case "ml":
		return kgrams.NewML(freqs, n)
	case "addk":
		return kgrams.NewAddK(freqs, n, k)
	case "sbo":
		return kgrams.NewSBO(freqs, n, lambda)
	case "abs":
		return kgrams.NewAbs(freqs, n, d)
	case "wb":
		return kgrams.NewWB(freqs, n)
	case "kn":
		return kgrams.NewKN(freqs, n, d)
	case "mkn":
		return kgrams.NewMKN(freqs, n, d1, d2, d3)
	default:
		return nil, fmt.Errorf("unknown smoother %q", name)
	}
}
