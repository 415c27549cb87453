// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - SHA3-256 of the DER certificate
type FingerprintBytes [32]byte

// fingerprint a certificate
func fingerprint(certificate []byte) FingerprintBytes {
	return FingerprintBytes(sha3.Sum256(certificate))
}

// load the certificate key pair and compute its fingerprint
func loadCertificate(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, FingerprintBytes, error) {

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, FingerprintBytes{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin := fingerprint(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fin)

	return tlsConfiguration, fin, nil
}
