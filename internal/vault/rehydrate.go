package vault

// Rehydrate decrypts every id's wallet file, rebuilding the in-memory
// keypair map a fresh orchestrator process needs on --resume (spec.md §3
// "the in-memory keypair map is rehydrated on resume by decrypting the
// files", §8 scenario 5). pathFor resolves a wallet id to its .enc path,
// typically store.Store.WalletPath.
func Rehydrate(ids []string, passphrase string, pathFor func(id string) string) (map[string]Keypair, error) {
	out := make(map[string]Keypair, len(ids))
	for _, id := range ids {
		kp, err := Load(pathFor(id), id, passphrase)
		if err != nil {
			return nil, err
		}
		out[id] = kp
	}
	return out, nil
}
