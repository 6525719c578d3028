package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"

	"github.com/golang/glog"
	"github.com/kho/easy"

	"github.com/vgherard/kgrams"
)

func main() {
	var args struct {
		Train string `name:"train" usage:"path to training corpus, one sentence per line"`
		Eval  string `name:"eval" usage:"path to held-out evaluation corpus, one sentence per line"`
	}
	n := flag.Int("n", 3, "model order")
	smoother := flag.String("smoother", "kn", "smoother: ml, addk, sbo, abs, wb, kn, mkn")
	k := flag.Float64("k", 1.0, "Add-k constant")
	lambda := flag.Float64("lambda", 0.4, "Stupid Backoff penalization")
	d := flag.Float64("d", 0.75, "discount (Absolute Discount / Kneser-Ney)")
	d1 := flag.Float64("d1", 0.5, "Modified Kneser-Ney discount for count 1")
	d2 := flag.Float64("d2", 1.0, "Modified Kneser-Ney discount for count 2")
	d3 := flag.Float64("d3", 1.0, "Modified Kneser-Ney discount for count 3+")
	lower := flag.Bool("lower", false, "lower-case the corpora before counting")
	easy.ParseFlagsAndArgs(&args)

	train, err := loadCorpus(args.Train, *lower)
	if err != nil {
		glog.Fatalf("loading training corpus: %v", err)
	}
	eval, err := loadCorpus(args.Eval, *lower)
	if err != nil {
		glog.Fatalf("loading evaluation corpus: %v", err)
	}

	var freqs *kgrams.KgramFreqs
	elapsed := easy.Timed(func() {
		freqs = kgrams.NewKgramFreqs(*n)
		freqs.ProcessSentences(train, false)
	})
	glog.Infof("ingested %d sentences (%d words), vocabulary size %d, in %v",
		len(train), freqs.TotWords(), freqs.V(), elapsed)

	s, err := fitSmoother(freqs, *n, *smoother, *k, *lambda, *d, *d1, *d2, *d3)
	if err != nil {
		glog.Fatalf("fitting smoother: %v", err)
	}

	var logProb float64
	var numWords int
	elapsed = easy.Timed(func() {
		for _, sentence := range eval {
			lp, nWords := kgrams.Score(s, sentence, true)
			logProb += lp
			numWords += nWords
		}
	})
	glog.Infof("scored %d sentences (%d words) in %v", len(eval), numWords, elapsed)

	crossEntropy := -logProb / float64(numWords)
	perplexity := math.Exp(crossEntropy)
	fmt.Printf("sents=%d words=%d logprob=%g cross_entropy=%g ppl=%g\n",
		len(eval), numWords, logProb, crossEntropy, perplexity)
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
