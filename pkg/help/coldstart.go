package help

const ColdstartYAML = `# flatgram Quick Start

commands:
  flatten: |
    # ./data/<subdir>/*.json -> output.csv (fixed columns, header first)
    flatgram flatten

  flatten_custom: |
    flatgram flatten --root ./data/ --output output.csv --delimiter _

  ngrams: |
    # Top 50 unigrams and bigrams for every line of corpus.txt
    flatgram ngrams

  ngrams_corpus_wide: |
    flatgram ngrams --corpus corpus.txt --top 20 --aggregate

  ngrams_languages: |
    flatgram ngrams --detect-language

  with_manifest: |
    flatgram flatten --manifest flatten-summary.yaml

  with_history: |
    flatgram flatten --history flatgram-history.db
    flatgram history --history flatgram-history.db --limit 10

config_file: |
  # flatgram --config flatgram.yaml flatten
  flatten:
    root: ./data/
    output: output.csv
    delimiter: _
    suffix: .json
    crlf: true
  ngrams:
    corpus: corpus.txt
    top: 50
    orders: [1, 2]
    languages: [English, French, German, Spanish]

exit_codes:
  0: success
  1: unexpected failure
  2: invalid config
  3: input not found (root directory, subdirectory or corpus)
  4: malformed JSON document
  5: output write failure

key_files:
  - "output.csv (flatten output, truncated on every run)"
  - "corpus.txt (ngrams input, one line per report block)"
`
